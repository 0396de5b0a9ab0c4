// Package main (cmd/storageurl) resolves storage URLs from the command line.
//
// Commands:
//
//   - parse: resolve each URL argument and print its descriptor as JSON, one
//     per line. With --alias name=url (repeatable) print a single object keyed
//     by alias instead, ready to paste into a STORAGES setting.
//   - env: resolve the URL held in an environment variable (STORAGE_URL by
//     default), falling back to --default.
//
// Example usage:
//
//	storageurl parse 's3://my-bucket/media?gzip=true'
//	storageurl parse --alias default=s3://media --alias staticfiles=file:///srv/static --pretty
//	STORAGE_URL=memory:// storageurl env
package main
