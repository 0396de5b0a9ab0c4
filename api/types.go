package api

import (
	"github.com/ruteri/storage-url/interfaces"
)

// Route paths served by the httpserver package.
const (
	ParsePath    = "/api/v1/parse"
	StoragesPath = "/api/v1/storages"

	// URLParam is the query parameter carrying the storage URL for ParsePath.
	URLParam = "url"
)

// StoragesRequest maps storage aliases (e.g. "default", "staticfiles") to storage URLs.
type StoragesRequest struct {
	Storages map[string]string `json:"storages"`
}

// StoragesResponse maps storage aliases to their resolved descriptors.
type StoragesResponse struct {
	Storages map[string]interfaces.StorageConfig `json:"storages"`
}

// ErrorResponse is returned with any non-200 status.
type ErrorResponse struct {
	Error string `json:"error"`
}
