package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"golang.org/x/net/html/charset"
)

// Document is a parsed SVG file.
type Document struct {
	Path string
	Raw  []byte
	icon *oksvg.SvgIcon
}

// Load reads and parses the SVG at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse checks that data is a well-formed SVG document and parses it.
func Parse(data []byte) (*Document, error) {
	if err := checkRoot(data); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	return &Document{Raw: data, icon: icon}, nil
}

// Validate confirms the file at path is well-formed SVG without rendering it.
func Validate(path string) error {
	_, err := Load(path)
	return err
}

// ViewBox returns the document's intrinsic width and height.
func (d *Document) ViewBox() (w, h float64) {
	return d.icon.ViewBox.W, d.icon.ViewBox.H
}

// checkRoot walks the whole token stream so trailing garbage is caught, and
// requires the first element to be <svg>.
func checkRoot(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	rootSeen := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || rootSeen {
			continue
		}
		if !strings.EqualFold(start.Name.Local, "svg") {
			return fmt.Errorf("root element is <%s>, expected <svg>", start.Name.Local)
		}
		rootSeen = true
	}
	if !rootSeen {
		return fmt.Errorf("no <svg> element found")
	}
	return nil
}
