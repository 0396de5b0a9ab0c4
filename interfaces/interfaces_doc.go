// Package interfaces defines the core types for storage URL resolution.
//
// This package provides the contracts between the resolver and its callers
// (CLI, HTTP API, clients) without including implementation details.
//
// # Types
//
//   - StorageURL: a storage URL split into scheme, authority, path and query
//   - StorageConfig: the descriptor handed to the host configuration system,
//     a backend identifier plus typed options
//   - OptionValue: a string, integer or boolean option value
//   - BackendKind: file, memory, s3 or custom
//
// # Resolver Interface
//
//   - ConfigResolver: resolves one URL or a whole alias-to-URL mapping
//
// # Errors
//
// Validation failures wrap one of the sentinel errors (ErrInvalidStorageURL,
// ErrInvalidPermissionsMode, ErrInvalidBoolean, ErrNoStorageURL) and can be
// matched with errors.Is.
package interfaces
