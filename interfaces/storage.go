package interfaces

import (
	"errors"
)

var (
	// ErrInvalidStorageURL is returned when a storage URL has no "://" delimiter or an empty scheme.
	// URLs must follow the format: <scheme>://[<authority>][/<path>][?<query>]
	ErrInvalidStorageURL = errors.New("invalid storage URL")

	// ErrInvalidPermissionsMode is returned when a permissions mode is not valid octal text.
	ErrInvalidPermissionsMode = errors.New("invalid permissions mode")

	// ErrInvalidBoolean is returned when a boolean option is not one of t, true, 1, f, false, 0.
	ErrInvalidBoolean = errors.New("invalid truth value")

	// ErrNoStorageURL is returned when neither the environment nor a default provides a storage URL.
	ErrNoStorageURL = errors.New("no storage URL configured")
)

// ConfigResolver turns storage URLs into backend descriptors.
type ConfigResolver interface {
	// Resolve parses a single storage URL.
	// Supports file://, memory://, s3:// and <dotted.backend.Path>://
	Resolve(rawURL string) (StorageConfig, error)

	// ResolveStorages parses a mapping of storage aliases to URLs.
	ResolveStorages(urls map[string]string) (map[string]StorageConfig, error)
}
