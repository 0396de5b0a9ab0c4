/*
Package api provides the HTTP surface of the storage URL resolver.

This package is organized into the following parts:

1. types.go - Request and response bodies shared by server and clients
2. server_config.go - HTTP server configuration
3. clients - Client library for API interaction

The HTTP server itself lives in the httpserver package.

# Endpoints

  - GET  /api/v1/parse?url=<storage url> - resolve a single storage URL
  - POST /api/v1/storages - resolve a mapping of storage aliases to URLs
  - GET  /livez, /readyz - health checks
  - GET  /drain, /undrain - readiness control for load balancers

Validation failures are returned as 400 with an ErrorResponse body.
*/
package api
