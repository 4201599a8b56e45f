package config

import "git.home.luguber.info/inful/brandassets/internal/catalog"

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Render.Supersample == 0 {
		cfg.Render.Supersample = 1
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = catalog.Default()
	}
}
