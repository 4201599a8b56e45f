package main

import (
	"os"

	"git.home.luguber.info/inful/brandassets/internal/config"
)

func main() {
	// .env values must be present before kong resolves env-backed flags.
	if _, err := config.LoadEnvFiles(); err != nil {
		_, _ = os.Stderr.WriteString("generate-brand-assets: failed to load .env: " + err.Error() + "\n")
	}
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
