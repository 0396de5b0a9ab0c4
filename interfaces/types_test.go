package interfaces

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageConfig_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		cfg      StorageConfig
		expected string
	}{
		{
			name:     "nil options",
			cfg:      StorageConfig{Backend: InMemoryStorageClass, Kind: InMemoryBackend},
			expected: `{"BACKEND":"django.core.files.storage.InMemoryStorage","OPTIONS":{}}`,
		},
		{
			name: "typed options",
			cfg: StorageConfig{
				Backend: FileSystemStorageClass,
				Kind:    FileSystemBackend,
				Options: Options{
					"location":              NewStringOption("/tmp/files"),
					"file_permissions_mode": NewIntOption(0o644),
				},
			},
			expected: `{"BACKEND":"django.core.files.storage.FileSystemStorage","OPTIONS":{"file_permissions_mode":420,"location":"/tmp/files"}}`,
		},
		{
			name: "bool option",
			cfg: StorageConfig{
				Backend: S3StorageClass,
				Kind:    S3Backend,
				Options: Options{"bucket_name": NewStringOption("b"), "gzip": NewBoolOption(true)},
			},
			expected: `{"BACKEND":"storages.backends.s3boto3.S3Boto3Storage","OPTIONS":{"bucket_name":"b","gzip":true}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.cfg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestStorageConfig_UnmarshalJSON(t *testing.T) {
	var cfg StorageConfig
	err := json.Unmarshal([]byte(`{"BACKEND":"storages.backends.s3boto3.S3Boto3Storage","OPTIONS":{"bucket_name":"b","gzip":false,"n":7}}`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, StorageConfig{
		Backend: S3StorageClass,
		Kind:    S3Backend,
		Options: Options{
			"bucket_name": NewStringOption("b"),
			"gzip":        NewBoolOption(false),
			"n":           NewIntOption(7),
		},
	}, cfg)
}

func TestOptionValue_UnmarshalJSONRejectsUnsupported(t *testing.T) {
	var v OptionValue
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))
}

func TestOptionValue_Accessors(t *testing.T) {
	s := NewStringOption("x")
	_, isInt := s.Int()
	str, isStr := s.Str()
	assert.True(t, isStr)
	assert.False(t, isInt)
	assert.Equal(t, "x", str)
	assert.Equal(t, StringOption, s.Kind())

	i := NewIntOption(420)
	n, ok := i.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(420), n)
	assert.Equal(t, "420", i.String())
	assert.Equal(t, int64(420), i.Interface())

	b := NewBoolOption(true)
	v, ok := b.Bool()
	assert.True(t, ok)
	assert.True(t, v)
	assert.Equal(t, "true", b.String())
}

func TestStorageConfig_Map(t *testing.T) {
	cfg := StorageConfig{
		Backend: S3StorageClass,
		Options: Options{"bucket_name": NewStringOption("b"), "gzip": NewBoolOption(false)},
	}
	assert.Equal(t, map[string]any{
		"BACKEND": S3StorageClass,
		"OPTIONS": map[string]any{"bucket_name": "b", "gzip": false},
	}, cfg.Map())
}

func TestKindForBackend(t *testing.T) {
	assert.Equal(t, FileSystemBackend, KindForBackend(FileSystemStorageClass))
	assert.Equal(t, InMemoryBackend, KindForBackend(InMemoryStorageClass))
	assert.Equal(t, S3Backend, KindForBackend(S3StorageClass))
	assert.Equal(t, CustomBackend, KindForBackend("myproject.myapp.MyCustomStorage"))
}

func TestStorageConfig_UnmarshalJSONBuiltinIdentifierFromCustomScheme(t *testing.T) {
	custom := StorageConfig{Backend: S3StorageClass, Kind: CustomBackend, Options: Options{"foo": NewStringOption("bar")}}

	data, err := json.Marshal(custom)
	require.NoError(t, err)

	var decoded StorageConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, S3Backend, decoded.Kind)
	assert.Equal(t, custom.Backend, decoded.Backend)
	assert.Equal(t, custom.Options, decoded.Options)
}
