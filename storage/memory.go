package storage

import (
	"github.com/ruteri/storage-url/interfaces"
)

// createInMemoryConfig builds an in-memory storage descriptor.
// URL format: memory://
// Authority, path and query are ignored.
func createInMemoryConfig(interfaces.StorageURL) (interfaces.StorageConfig, error) {
	return interfaces.StorageConfig{
		Backend: interfaces.InMemoryStorageClass,
		Kind:    interfaces.InMemoryBackend,
		Options: interfaces.Options{},
	}, nil
}
