package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ruteri/storage-url/api"
	"github.com/ruteri/storage-url/api/clients"
	"github.com/ruteri/storage-url/interfaces"
	"github.com/ruteri/storage-url/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(resolver interfaces.ConfigResolver) http.Handler {
	// Create logger with no output for tests
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(resolver, logger)

	mux := chi.NewRouter()
	mux.Get(api.ParsePath, handler.HandleParse)
	mux.Post(api.StoragesPath, handler.HandleStorages)
	return mux
}

func parseRequest(rawURL string) *http.Request {
	return httptest.NewRequest(http.MethodGet, api.ParsePath+"?url="+url.QueryEscape(rawURL), nil)
}

func TestHandleParse(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "memory",
			url:      "memory://",
			expected: `{"BACKEND":"django.core.files.storage.InMemoryStorage","OPTIONS":{}}`,
		},
		{
			name:     "file with modes",
			url:      "file:///tmp/files?base_url=/media/&file_permissions_mode=0o644",
			expected: `{"BACKEND":"django.core.files.storage.FileSystemStorage","OPTIONS":{"location":"/tmp/files","base_url":"/media/","file_permissions_mode":420}}`,
		},
		{
			name:     "s3 with gzip",
			url:      "s3://my-bucket/my-folder?gzip=True",
			expected: `{"BACKEND":"storages.backends.s3boto3.S3Boto3Storage","OPTIONS":{"bucket_name":"my-bucket","location":"/my-folder","gzip":true}}`,
		},
		{
			name:     "custom",
			url:      "myproject.myapp.MyCustomStorage://?foo=bar",
			expected: `{"BACKEND":"myproject.myapp.MyCustomStorage","OPTIONS":{"foo":"bar"}}`,
		},
	}

	router := newTestRouter(storage.NewConfigResolver(nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, parseRequest(tt.url))

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(body))
		})
	}
}

func TestHandleParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		errContains string
	}{
		{name: "missing url", target: api.ParsePath, errContains: "missing url"},
		{name: "no delimiter", target: parseRequest("not-a-url").URL.String(), errContains: "invalid storage URL"},
		{name: "bad gzip", target: parseRequest("s3://b?gzip=maybe").URL.String(), errContains: "invalid truth value"},
		{name: "bad mode", target: parseRequest("file:///x?file_permissions_mode=9").URL.String(), errContains: "invalid permissions mode"},
	}

	router := newTestRouter(storage.NewConfigResolver(nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var errResp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Contains(t, errResp.Error, tt.errContains)
		})
	}
}

func TestHandleParse_ResolverFailure(t *testing.T) {
	resolver := new(clients.MockConfigResolver)
	resolver.On("Resolve", "memory://").Return(interfaces.StorageConfig{}, errors.New("boom"))

	w := httptest.NewRecorder()
	newTestRouter(resolver).ServeHTTP(w, parseRequest("memory://"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resolver.AssertExpectations(t)
}

func TestHandleStorages(t *testing.T) {
	body := `{"storages":{"default":"s3://media","staticfiles":"file:///srv/static"}}`
	req := httptest.NewRequest(http.MethodPost, api.StoragesPath, strings.NewReader(body))

	w := httptest.NewRecorder()
	newTestRouter(storage.NewConfigResolver(nil)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"storages":{
		"default":{"BACKEND":"storages.backends.s3boto3.S3Boto3Storage","OPTIONS":{"bucket_name":"media"}},
		"staticfiles":{"BACKEND":"django.core.files.storage.FileSystemStorage","OPTIONS":{"location":"/srv/static"}}
	}}`, w.Body.String())
}

func TestHandleStorages_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "malformed body", body: `{"storages":`, status: http.StatusBadRequest},
		{name: "empty mapping", body: `{"storages":{}}`, status: http.StatusBadRequest},
		{name: "invalid url", body: `{"storages":{"default":"s3://b?gzip=nope"}}`, status: http.StatusBadRequest},
	}

	router := newTestRouter(storage.NewConfigResolver(nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, api.StoragesPath, bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandleStorages_UsesResolver(t *testing.T) {
	resolver := new(clients.MockConfigResolver)
	expected := map[string]interfaces.StorageConfig{
		"default": {Backend: "custom.Backend", Options: interfaces.Options{}},
	}
	resolver.On("ResolveStorages", mock.MatchedBy(func(urls map[string]string) bool {
		return urls["default"] == "custom.Backend://"
	})).Return(expected, nil)

	req := httptest.NewRequest(http.MethodPost, api.StoragesPath, strings.NewReader(`{"storages":{"default":"custom.Backend://"}}`))
	w := httptest.NewRecorder()
	newTestRouter(resolver).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"storages":{"default":{"BACKEND":"custom.Backend","OPTIONS":{}}}}`, w.Body.String())
	resolver.AssertExpectations(t)
}
