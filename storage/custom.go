package storage

import (
	"github.com/ruteri/storage-url/interfaces"
)

// createCustomConfig builds a descriptor for a backend that has no dedicated builder.
// URL format: myproject.storage.MyStorage://[?key=value...]
// The scheme is the backend identifier, verbatim. Every query parameter is
// copied as a string using its first value.
func createCustomConfig(u interfaces.StorageURL) (interfaces.StorageConfig, error) {
	options := make(interfaces.Options, len(u.Query))
	for key := range u.Query {
		options[key] = interfaces.NewStringOption(u.GetParam(key))
	}

	return interfaces.StorageConfig{
		Backend: u.Scheme,
		Kind:    interfaces.CustomBackend,
		Options: options,
	}, nil
}
