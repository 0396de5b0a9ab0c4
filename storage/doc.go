// Package storage turns storage URLs into backend descriptors.
//
// A storage URL names a file storage backend and its options in a single
// string, for example in an environment variable. The package splits the URL
// and hands it to one builder per well-known scheme:
//
//	file:///var/www/media?base_url=/media/&file_permissions_mode=0o644
//	memory://
//	s3://bucket-name/prefix?gzip=true
//	myproject.storage.CustomStorage://?key=value
//
// The result is an interfaces.StorageConfig, a backend identifier plus typed
// options, ready to be fed to the host configuration system. Nothing here
// connects to or validates a backend.
//
// # URL Format
//
//	<scheme>://[<authority>][/<path>][?<query>]
//
// The scheme is everything before the first "://". Authority and path are
// used as written. Only the first value of a repeated query parameter counts.
//
// # Backends
//
//   - file: location is authority+path; base_url is copied; the two
//     permissions modes are parsed as octal integers
//   - memory: fixed backend, no options
//   - s3: bucket_name from the authority, location from the path when
//     present, gzip parsed as a boolean
//   - anything else: the scheme is the backend identifier and every query
//     parameter is copied as a string
package storage
