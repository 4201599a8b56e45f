package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// EnvFiles are the dotenv files read, in order.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads the first existing dotenv file from EnvFiles. Variables
// already present in the process environment are not overwritten. Returns the
// loaded filename, or "" when none exists.
func LoadEnvFiles() (string, error) {
	for _, name := range EnvFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return "", err
		}
		slog.Debug("Loaded environment variables", "file", name)
		return name, nil
	}
	return "", nil
}
