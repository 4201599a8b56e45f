package manifest

import (
	"os"
	"path/filepath"
	"testing"

	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var androidSizes = []int{36, 48, 72, 96, 144, 192}

func TestAndroidIcons(t *testing.T) {
	icons := AndroidIcons(androidSizes, "/")
	require.Len(t, icons, 6)
	assert.Equal(t, Icon{Src: "/android-icon-36x36.png", Sizes: "36x36", Type: "image/png", Density: "0.75"}, icons[0])
	assert.Equal(t, "1.0", icons[1].Density)
	assert.Equal(t, "1.5", icons[2].Density)
	assert.Equal(t, "4.0", icons[5].Density)
}

func TestPatch_ReplacesAndroidKeepsOthers(t *testing.T) {
	in := `{
  "name": "Brand",
  "icons": [
    {"src": "\/android-icon-36x36.png", "sizes": "36x36", "type": "image\/png"},
    {"src": "/maskable-512.png", "sizes": "512x512", "purpose": "maskable"}
  ],
  "theme_color": "#ffffff"
}`
	out, changed, err := Patch([]byte(in), AndroidIcons(androidSizes, "/"))
	require.NoError(t, err)
	require.True(t, changed)

	doc := gjson.ParseBytes(out)
	assert.Equal(t, "Brand", doc.Get("name").String())
	assert.Equal(t, "#ffffff", doc.Get("theme_color").String())

	icons := doc.Get("icons").Array()
	require.Len(t, icons, 7)
	assert.Equal(t, "/maskable-512.png", icons[0].Get("src").String())
	assert.Equal(t, "maskable", icons[0].Get("purpose").String())
	assert.Equal(t, "/android-icon-192x192.png", icons[6].Get("src").String())
	assert.Equal(t, "192x192", icons[6].Get("sizes").String())
	assert.Contains(t, string(out), `"theme_color": "#ffffff"`, "untouched content keeps its formatting")
}

func TestPatch_AddsMissingIconsKey(t *testing.T) {
	out, changed, err := Patch([]byte(`{"name":"Brand"}`), AndroidIcons([]int{48}, ""))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "android-icon-48x48.png", gjson.GetBytes(out, "icons.0.src").String())
}

func TestPatch_ConfirmsUpToDate(t *testing.T) {
	icons := AndroidIcons(androidSizes, "")
	first, changed, err := Patch([]byte(`{"name":"Brand"}`), icons)
	require.NoError(t, err)
	require.True(t, changed)

	second, changed, err := Patch(first, icons)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, second)
}

func TestPatch_Malformed(t *testing.T) {
	for _, in := range []string{`{"icons": [`, `[1,2]`, `{"icons": "nope"}`} {
		_, _, err := Patch([]byte(in), nil)
		assert.Error(t, err, in)
	}
}

func TestUpdate_Outcomes(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "manifest.json")
	icons := AndroidIcons(androidSizes, "")

	outcome, err := Update(file, icons)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMissing, outcome)
	_, statErr := os.Stat(file)
	assert.True(t, os.IsNotExist(statErr), "missing manifest is not created")

	require.NoError(t, os.WriteFile(file, []byte(`{"name":"Brand","icons":[]}`), 0o600))
	outcome, err = Update(file, icons)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	outcome, err = Update(file, icons)
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, outcome)
}

func TestUpdate_MalformedIsWarning(t *testing.T) {
	file := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(file, []byte(`{not json`), 0o644))

	_, err := Update(file, AndroidIcons(androidSizes, ""))
	require.Error(t, err)
	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryManifest, classified.Category())
	assert.Equal(t, ferrors.SeverityWarning, classified.Severity())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(data), "malformed manifest is left untouched")
}
