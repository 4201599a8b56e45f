package config

import (
	"git.home.luguber.info/inful/brandassets/internal/catalog"
	"git.home.luguber.info/inful/brandassets/internal/foundation"
	"git.home.luguber.info/inful/brandassets/internal/svg"
)

var validator = foundation.NewValidatorChain(
	foundation.Field(func(c *Config) string { return c.Version },
		foundation.OneOf("version", []string{CurrentVersion})),
	foundation.Field(func(c *Config) int { return c.Render.Supersample },
		foundation.IntRange("render.supersample", 1, svg.MaxSupersample)),
	foundation.Field(func(c *Config) catalog.Catalog { return c.Catalog },
		foundation.Check("catalog", catalog.Catalog.Validate)),
)

// Validate checks a configuration after defaults have been applied and
// reports every invalid field at once.
func Validate(cfg *Config) error {
	return validator.Validate(cfg).ToError()
}
