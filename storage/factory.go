package storage

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ruteri/storage-url/interfaces"
)

// knownSchemes maps well-known URL schemes to their backend kind.
// Schemes not listed here resolve to interfaces.CustomBackend.
var knownSchemes = map[string]interfaces.BackendKind{
	"file":   interfaces.FileSystemBackend,
	"memory": interfaces.InMemoryBackend,
	"s3":     interfaces.S3Backend,
}

// ConfigResolver creates storage descriptors from URL strings.
// It holds no mutable state and is safe for concurrent use.
type ConfigResolver struct {
	log *slog.Logger
}

var _ interfaces.ConfigResolver = (*ConfigResolver)(nil)

// NewConfigResolver creates a new resolver. A nil logger discards log output.
func NewConfigResolver(logger *slog.Logger) *ConfigResolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ConfigResolver{log: logger}
}

var defaultResolver = NewConfigResolver(nil)

// Parse resolves a storage URL with a resolver that does not log.
func Parse(rawURL string) (interfaces.StorageConfig, error) {
	return defaultResolver.Resolve(rawURL)
}

// KindForScheme returns the backend kind selected by a scheme.
// Matching is case-insensitive.
func KindForScheme(scheme string) interfaces.BackendKind {
	if kind, ok := knownSchemes[strings.ToLower(scheme)]; ok {
		return kind
	}
	return interfaces.CustomBackend
}

// Resolve creates a storage descriptor from a URL.
// The URL format should be <scheme>://[<authority>][/<path>][?<query>]
//
// Supported schemes:
//   - file:// - Local file system storage
//   - memory:// - In-memory storage
//   - s3:// - Amazon S3 or compatible object storage
//   - any other scheme - used verbatim as the backend identifier
//
// Returns an error if the URL has no scheme delimiter or an option fails validation.
func (r *ConfigResolver) Resolve(rawURL string) (interfaces.StorageConfig, error) {
	u, err := ParseStorageURL(rawURL)
	if err != nil {
		return interfaces.StorageConfig{}, err
	}

	kind := KindForScheme(u.Scheme)
	r.log.Debug("Resolving storage URL", slog.String("scheme", u.Scheme), slog.String("kind", kind.String()))

	var cfg interfaces.StorageConfig
	switch kind {
	case interfaces.FileSystemBackend:
		cfg, err = createFileSystemConfig(u)
	case interfaces.InMemoryBackend:
		cfg, err = createInMemoryConfig(u)
	case interfaces.S3Backend:
		cfg, err = createS3Config(u)
	default:
		cfg, err = createCustomConfig(u)
	}
	if err != nil {
		r.log.Debug("Invalid storage URL option", "err", err, slog.String("scheme", u.Scheme))
		return interfaces.StorageConfig{}, err
	}

	return cfg, nil
}

// ResolveStorages creates descriptors for a mapping of storage aliases to URLs,
// such as {"default": "s3://media", "staticfiles": "file:///srv/static"}.
// Aliases are processed in sorted order and the first failure aborts with an
// error naming the alias.
func (r *ConfigResolver) ResolveStorages(urls map[string]string) (map[string]interfaces.StorageConfig, error) {
	aliases := make([]string, 0, len(urls))
	for alias := range urls {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	configs := make(map[string]interfaces.StorageConfig, len(urls))
	for _, alias := range aliases {
		cfg, err := r.Resolve(urls[alias])
		if err != nil {
			return nil, fmt.Errorf("storage %q: %w", alias, err)
		}
		configs[alias] = cfg
	}

	return configs, nil
}
