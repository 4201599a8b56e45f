// Package favicon composes the favicon.svg and favicon.ico outputs.
package favicon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	svgOpenTag = regexp.MustCompile(`(?i)<svg\b[^>]*>`)
	widthAttr  = regexp.MustCompile(`\swidth\s*=\s*("[^"]*"|'[^']*')`)
	heightAttr = regexp.MustCompile(`\sheight\s*=\s*("[^"]*"|'[^']*')`)
)

// SizedSVG returns content with the root <svg> tag's width and height set to
// size. Attributes are replaced when present and inserted otherwise. Content
// without an <svg> tag is returned unchanged.
func SizedSVG(content []byte, size int) []byte {
	src := string(content)
	loc := svgOpenTag.FindStringIndex(src)
	if loc == nil {
		return content
	}
	tag := src[loc[0]:loc[1]]
	tag = setAttr(tag, widthAttr, "width", size)
	tag = setAttr(tag, heightAttr, "height", size)
	return []byte(src[:loc[0]] + tag + src[loc[1]:])
}

func setAttr(tag string, re *regexp.Regexp, name string, size int) string {
	value := fmt.Sprintf(`%s="%s"`, name, strconv.Itoa(size))
	// The match starts at the single whitespace byte preceding the name and
	// ends after the closing quote, either quote style.
	if loc := re.FindStringIndex(tag); loc != nil {
		return tag[:loc[0]+1] + value + tag[loc[1]:]
	}
	if strings.HasSuffix(tag, "/>") {
		return tag[:len(tag)-2] + " " + value + "/>"
	}
	return tag[:len(tag)-1] + " " + value + ">"
}
