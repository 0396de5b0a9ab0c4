package storage

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ruteri/storage-url/interfaces"
)

// DefaultEnvVar is the environment variable read by FromEnv when no name is given.
const DefaultEnvVar = "STORAGE_URL"

// FromEnv resolves the storage URL held in the named environment variable.
// An unset or empty variable falls back to fallback. If both are empty
// ErrNoStorageURL is returned.
func (r *ConfigResolver) FromEnv(name, fallback string) (interfaces.StorageConfig, error) {
	if name == "" {
		name = DefaultEnvVar
	}

	rawURL := os.Getenv(name)
	if rawURL == "" {
		rawURL = fallback
	}
	if rawURL == "" {
		return interfaces.StorageConfig{}, fmt.Errorf("%w: %s is not set", interfaces.ErrNoStorageURL, name)
	}

	r.log.Debug("Resolving storage URL from environment", slog.String("env", name))
	return r.Resolve(rawURL)
}
