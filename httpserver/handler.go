package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ruteri/storage-url/api"
	"github.com/ruteri/storage-url/interfaces"
)

// maxBodySize is the maximum allowed request body size (1MB).
const maxBodySize = 1024 * 1024

// Handler processes HTTP requests for the storage URL resolver.
type Handler struct {
	resolver interfaces.ConfigResolver
	log      *slog.Logger
}

// NewHandler creates a new HTTP request handler backed by resolver.
func NewHandler(resolver interfaces.ConfigResolver, log *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		log:      log,
	}
}

// HandleParse resolves a single storage URL.
//
// URL format: GET /api/v1/parse?url=<storage url>
//
// Response: the StorageConfig JSON descriptor.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get(api.URLParam)
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "missing url query parameter")
		return
	}

	cfg, err := h.resolver.Resolve(rawURL)
	if err != nil {
		h.log.Warn("Failed to resolve storage URL", "err", err)
		writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, cfg)
}

// HandleStorages resolves a mapping of storage aliases to URLs.
//
// URL format: POST /api/v1/storages
//
// Request body: {"storages": {"<alias>": "<storage url>", ...}}
//
// Response: {"storages": {"<alias>": <StorageConfig>, ...}}
func (h *Handler) HandleStorages(w http.ResponseWriter, r *http.Request) {
	var req api.StoragesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		h.log.Warn("Failed to decode storages request", "err", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Storages) == 0 {
		writeError(w, http.StatusBadRequest, "no storages in request")
		return
	}

	configs, err := h.resolver.ResolveStorages(req.Storages)
	if err != nil {
		h.log.Warn("Failed to resolve storages", "err", err, "count", len(req.Storages))
		writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, api.StoragesResponse{Storages: configs})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to encode response", "err", err)
	}
}

// statusFor maps validation failures to 400 and anything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrInvalidStorageURL),
		errors.Is(err, interfaces.ErrInvalidPermissionsMode),
		errors.Is(err, interfaces.ErrInvalidBoolean):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: msg})
}
