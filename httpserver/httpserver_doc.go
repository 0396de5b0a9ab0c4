/*
Package httpserver implements an HTTP server for the storage URL resolver.

It lets services that cannot link the Go package resolve storage URLs into
backend descriptors over HTTP. The server never connects to any backend.

Main features:

  • Single URL resolution
  • Resolution of a whole alias-to-URL storages mapping
  • Health and diagnostics endpoints
  • Optional pprof endpoint

API Endpoints:

  • GET /api/v1/parse?url=<storage url>
    Returns {"BACKEND": "...", "OPTIONS": {...}}

  • POST /api/v1/storages
    Body {"storages": {"default": "s3://bucket"}}
    Returns {"storages": {"default": {"BACKEND": "...", "OPTIONS": {...}}}}

  • GET /livez, /readyz, /drain, /undrain
    Liveness, readiness and drain control

Invalid URLs and option values are answered with 400 and {"error": "..."}.
*/
package httpserver
