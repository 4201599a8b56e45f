package config

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/brandassets/internal/catalog"
	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingOptionalReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "brand-assets.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 1, cfg.Render.Supersample)
	assert.Equal(t, catalog.Default(), cfg.Catalog)
}

func TestLoad_MissingRequiredFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoad_FullFile(t *testing.T) {
	t.Setenv("BRAND_OUT", "public")
	dir := t.TempDir()
	path := filepath.Join(dir, "brand-assets.yaml")
	content := `version: "1"
output:
  directory: ${BRAND_OUT}
  skip_favicon_svg: true
inputs:
  assets_dir: design/brand
  thumbnail: design/avatar.svg
render:
  supersample: 4
manifest:
  path: web/manifest.json
  src_prefix: /
metrics:
  textfile: /var/lib/node_exporter/brandassets.prom
catalog:
  - family: favicon
    sizes: [16, 32]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "public"), cfg.Output.Directory)
	assert.True(t, cfg.Output.SkipFaviconSVG)
	assert.False(t, cfg.Output.SkipFaviconICO)
	assert.Equal(t, filepath.Join(dir, "design", "brand"), cfg.Inputs.AssetsDir)
	assert.Equal(t, filepath.Join(dir, "design", "avatar.svg"), cfg.Inputs.Thumbnail)
	assert.Equal(t, 4, cfg.Render.Supersample)
	assert.Equal(t, filepath.Join(dir, "web", "manifest.json"), cfg.Manifest.Path)
	assert.Equal(t, "/", cfg.Manifest.SrcPrefix)
	assert.Equal(t, "/var/lib/node_exporter/brandassets.prom", cfg.Metrics.Textfile)
	assert.Equal(t, catalog.Catalog{{Family: catalog.FamilyFavicon, Sizes: []int{16, 32}}}, cfg.Catalog)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "outputs:\n  directory: x\n"},
		{"bad version", "version: \"2\"\n"},
		{"supersample too high", "render:\n  supersample: 64\n"},
		{"negative supersample", "render:\n  supersample: -1\n"},
		{"duplicate catalog output", "catalog:\n  - family: a\n    sizes: [16, 16]\n"},
		{"not yaml", "output: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	name, err := LoadEnvFiles()
	require.NoError(t, err)
	assert.Empty(t, name)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("BRANDASSETS_TEST_VAR=from-file\nBRANDASSETS_TEST_KEEP=from-file\n"), 0o644))
	t.Setenv("BRANDASSETS_TEST_KEEP", "from-env")
	t.Setenv("BRANDASSETS_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("BRANDASSETS_TEST_VAR"))

	name, err = LoadEnvFiles()
	require.NoError(t, err)
	assert.Equal(t, ".env.local", name)
	assert.Equal(t, "from-file", os.Getenv("BRANDASSETS_TEST_VAR"))
	assert.Equal(t, "from-env", os.Getenv("BRANDASSETS_TEST_KEEP"), "existing env wins")
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Version = "9"
	cfg.Render.Supersample = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	assert.Contains(t, err.Error(), "version")
	assert.Contains(t, err.Error(), "render.supersample")
}

func TestLoad_RelativePathsAnchorToConfigDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "brand-assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  directory: public\ninputs:\n  script_dir: /opt/scripts\n"), 0o644))
	t.Chdir(t.TempDir())

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "public"), cfg.Output.Directory)
	assert.Equal(t, "/opt/scripts", cfg.Inputs.ScriptDir, "absolute paths are kept")
	assert.Empty(t, cfg.Inputs.AssetsDir, "unset paths stay unset")
	assert.Empty(t, Default().Output.Directory)
}
