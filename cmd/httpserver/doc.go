// Package main (cmd/httpserver) implements the storage URL resolver server.
//
// The server exposes the resolver over HTTP so that services in other
// languages, or deploy tooling, can turn storage URLs into backend
// descriptors without linking the Go package. It never connects to a backend.
//
// Configuration is handled through command-line flags (also readable from
// LISTEN_ADDR, LOG_JSON and LOG_DEBUG). The server shuts down gracefully on
// SIGINT/SIGTERM and supports health checks, drain control and an optional
// pprof endpoint.
//
// Example usage:
//
//	storage-url-server --listen-addr=0.0.0.0:8080 --log-json
//
//	curl 'http://localhost:8080/api/v1/parse?url=s3://my-bucket/media%3Fgzip%3Dtrue'
package main
