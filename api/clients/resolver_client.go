package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ruteri/storage-url/api"
	"github.com/ruteri/storage-url/interfaces"
	"github.com/stretchr/testify/mock"
)

// ResolverClient implements interfaces.ConfigResolver for HTTP-based communication
// with the storage URL resolver server.
type ResolverClient struct {
	// ServerAddr is the base URL of the resolver server
	ServerAddr string

	// HTTPClient defaults to http.DefaultClient
	HTTPClient *http.Client
}

var _ interfaces.ConfigResolver = (*ResolverClient)(nil)

// NewResolverClient creates a client for the server at serverAddr.
func NewResolverClient(serverAddr string) *ResolverClient {
	return &ResolverClient{
		ServerAddr: strings.TrimSuffix(serverAddr, "/"),
	}
}

func (c *ResolverClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Resolve asks the server to resolve a single storage URL.
func (c *ResolverClient) Resolve(rawURL string) (interfaces.StorageConfig, error) {
	reqURL := fmt.Sprintf("%s%s?%s=%s", c.ServerAddr, api.ParsePath, api.URLParam, url.QueryEscape(rawURL))

	resp, err := c.httpClient().Get(reqURL)
	if err != nil {
		return interfaces.StorageConfig{}, fmt.Errorf("could not request parse endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.StorageConfig{}, responseError("parse", resp)
	}

	var cfg interfaces.StorageConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return interfaces.StorageConfig{}, fmt.Errorf("could not parse parse response: %w", err)
	}

	return cfg, nil
}

// ResolveStorages asks the server to resolve a mapping of aliases to storage URLs.
func (c *ResolverClient) ResolveStorages(urls map[string]string) (map[string]interfaces.StorageConfig, error) {
	body, err := json.Marshal(api.StoragesRequest{Storages: urls})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient().Post(c.ServerAddr+api.StoragesPath, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not request storages endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("storages", resp)
	}

	var parsedResponse api.StoragesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsedResponse); err != nil {
		return nil, fmt.Errorf("could not parse storages response: %w", err)
	}

	return parsedResponse.Storages, nil
}

func responseError(endpoint string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s endpoint returned non-200 response: %d", endpoint, resp.StatusCode)
	}

	var errResp api.ErrorResponse
	if json.Unmarshal(bodyBytes, &errResp) == nil && errResp.Error != "" {
		return fmt.Errorf("%s endpoint returned error %d: %s", endpoint, resp.StatusCode, errResp.Error)
	}
	return fmt.Errorf("%s endpoint returned error %d: %s", endpoint, resp.StatusCode, string(bodyBytes))
}

// MockConfigResolver implements a mock interfaces.ConfigResolver for testing.
type MockConfigResolver struct {
	mock.Mock
}

// Resolve implements the ConfigResolver interface for testing.
func (m *MockConfigResolver) Resolve(rawURL string) (interfaces.StorageConfig, error) {
	args := m.Called(rawURL)
	return args.Get(0).(interfaces.StorageConfig), args.Error(1)
}

// ResolveStorages implements the ConfigResolver interface for testing.
func (m *MockConfigResolver) ResolveStorages(urls map[string]string) (map[string]interfaces.StorageConfig, error) {
	args := m.Called(urls)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interfaces.StorageConfig), args.Error(1)
}
