package config

import "git.home.luguber.info/inful/brandassets/internal/catalog"

// CurrentVersion is the only configuration schema version accepted.
const CurrentVersion = "1"

// Config is the optional on-disk configuration for a generator run.
type Config struct {
	Version  string          `yaml:"version"`
	Output   OutputConfig    `yaml:"output"`
	Inputs   InputsConfig    `yaml:"inputs"`
	Render   RenderConfig    `yaml:"render"`
	Manifest ManifestConfig  `yaml:"manifest"`
	Metrics  MetricsConfig   `yaml:"metrics"`
	Catalog  catalog.Catalog `yaml:"catalog,omitempty"`
}

// OutputConfig controls where and which files are written.
type OutputConfig struct {
	Directory      string `yaml:"directory"`
	SkipFaviconSVG bool   `yaml:"skip_favicon_svg"`
	SkipFaviconICO bool   `yaml:"skip_favicon_ico"`
}

// InputsConfig controls where the logo SVGs are searched for.
// Empty directories fall back to the project layout.
type InputsConfig struct {
	ScriptDir string `yaml:"script_dir"`
	AssetsDir string `yaml:"assets_dir"`
	Thumbnail string `yaml:"thumbnail"`
	Light     string `yaml:"light"`
	Dark      string `yaml:"dark"`
}

// RenderConfig tunes rasterization.
type RenderConfig struct {
	// Supersample renders at N times the target size and downsamples.
	Supersample int `yaml:"supersample"`
}

// ManifestConfig controls the web manifest update.
type ManifestConfig struct {
	// Path defaults to manifest.json inside the output directory.
	Path      string `yaml:"path"`
	SrcPrefix string `yaml:"src_prefix"`
	Skip      bool   `yaml:"skip"`
}

// MetricsConfig controls the Prometheus textfile written after a run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}
