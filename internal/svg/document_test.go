package svg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">
  <rect x="10" y="10" width="80" height="80" fill="#ff0000"/>
</svg>`

func TestParse_Valid(t *testing.T) {
	doc, err := Parse([]byte(squareSVG))
	require.NoError(t, err)
	w, h := doc.ViewBox()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 100.0, h)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"not xml", "this is not svg"},
		{"unclosed", `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1">`},
		{"wrong root", `<html><body/></html>`},
		{"mismatched", `<svg xmlns="http://www.w3.org/2000/svg"><g></rect></svg>`},
		{"trailing garbage", `<svg xmlns="http://www.w3.org/2000/svg"></svg><`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestValidate_File(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "logo.svg")
	bad := filepath.Join(dir, "logo_dark.svg")
	require.NoError(t, os.WriteFile(good, []byte(squareSVG), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("<svg><g>"), 0o644))

	assert.NoError(t, Validate(good))
	assert.Error(t, Validate(bad))
	assert.Error(t, Validate(filepath.Join(dir, "missing.svg")))
}

func TestLoad_KeepsPathAndBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo_thumbnail.svg")
	require.NoError(t, os.WriteFile(path, []byte(squareSVG), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, squareSVG, string(doc.Raw))
}

func TestParse_DeclaredLatin1Encoding(t *testing.T) {
	data := `<?xml version="1.0" encoding="ISO-8859-1"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><title>caf` + "\xe9" + `</title><rect width="10" height="10"/></svg>`

	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	w, h := doc.ViewBox()
	assert.InDelta(t, 10.0, w, 0.001)
	assert.InDelta(t, 10.0, h, 0.001)
}
