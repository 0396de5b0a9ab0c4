package clients_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ruteri/storage-url/api"
	"github.com/ruteri/storage-url/api/clients"
	"github.com/ruteri/storage-url/httpserver"
	"github.com/ruteri/storage-url/interfaces"
	"github.com/ruteri/storage-url/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolverServer(t *testing.T) *httptest.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := httpserver.NewHandler(storage.NewConfigResolver(logger), logger)

	mux := chi.NewRouter()
	mux.Get(api.ParsePath, handler.HandleParse)
	mux.Post(api.StoragesPath, handler.HandleStorages)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestResolverClient_Resolve(t *testing.T) {
	server := newResolverServer(t)
	client := clients.NewResolverClient(server.URL + "/")

	for _, rawURL := range []string{
		"memory://",
		"file:///tmp/files?base_url=/a b/&directory_permissions_mode=755",
		"s3://my-bucket/my-folder?gzip=0",
		"myproject.myapp.MyCustomStorage://?foo=bar&x=%26",
	} {
		t.Run(rawURL, func(t *testing.T) {
			remote, err := client.Resolve(rawURL)
			require.NoError(t, err)

			local, err := storage.Parse(rawURL)
			require.NoError(t, err)

			assert.Equal(t, local, remote)
		})
	}
}

func TestResolverClient_ResolveError(t *testing.T) {
	client := clients.NewResolverClient(newResolverServer(t).URL)

	_, err := client.Resolve("s3://my-bucket?gzip=sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), `invalid truth value "sometimes"`)
}

func TestResolverClient_ResolveStorages(t *testing.T) {
	client := clients.NewResolverClient(newResolverServer(t).URL)

	configs, err := client.ResolveStorages(map[string]string{
		"default":     "s3://media?gzip=true",
		"staticfiles": "file://static",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interfaces.StorageConfig{
		"default": {
			Backend: interfaces.S3StorageClass,
			Kind:    interfaces.S3Backend,
			Options: interfaces.Options{
				"bucket_name": interfaces.NewStringOption("media"),
				"gzip":        interfaces.NewBoolOption(true),
			},
		},
		"staticfiles": {
			Backend: interfaces.FileSystemStorageClass,
			Kind:    interfaces.FileSystemBackend,
			Options: interfaces.Options{
				"location": interfaces.NewStringOption("static"),
			},
		},
	}, configs)
}

func TestResolverClient_ResolveStoragesError(t *testing.T) {
	client := clients.NewResolverClient(newResolverServer(t).URL)

	configs, err := client.ResolveStorages(map[string]string{"default": "nodelimiter"})
	require.Error(t, err)
	assert.Nil(t, configs)
	assert.Contains(t, err.Error(), `storage "default"`)
}
