package interfaces

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// BackendKind selects the builder used for a storage URL.
type BackendKind int

const (
	// CustomBackend uses the raw scheme as the backend identifier
	CustomBackend BackendKind = iota
	// FileSystemBackend stores files on a local directory
	FileSystemBackend
	// InMemoryBackend keeps files in process memory
	InMemoryBackend
	// S3Backend stores files in an S3-compatible bucket
	S3Backend
)

// String returns kind name.
func (k BackendKind) String() string {
	switch k {
	case FileSystemBackend:
		return "file"
	case InMemoryBackend:
		return "memory"
	case S3Backend:
		return "s3"
	default:
		return "custom"
	}
}

// Backend identifiers understood by the host configuration system.
const (
	FileSystemStorageClass = "django.core.files.storage.FileSystemStorage"
	InMemoryStorageClass   = "django.core.files.storage.InMemoryStorage"
	S3StorageClass         = "storages.backends.s3boto3.S3Boto3Storage"
)

// StorageURL is a storage URL decomposed into its parts.
type StorageURL struct {
	Raw       string     // Original URL
	Scheme    string     // Text before the first "://", verbatim
	Authority string     // Host-like segment, may be empty
	Path      string     // Resource path, not normalized
	Query     url.Values // Query parameters in order of appearance
}

// String returns the original URL string.
func (u StorageURL) String() string {
	return u.Raw
}

// HasParam reports whether the query carries a value for name.
func (u StorageURL) HasParam(name string) bool {
	return len(u.Query[name]) > 0
}

// GetParam returns the first value of a query parameter.
func (u StorageURL) GetParam(name string) string {
	return u.Query.Get(name)
}

// OptionKind tags the type held by an OptionValue.
type OptionKind int

const (
	StringOption OptionKind = iota
	IntOption
	BoolOption
)

// String returns kind name.
func (k OptionKind) String() string {
	switch k {
	case StringOption:
		return "string"
	case IntOption:
		return "int"
	case BoolOption:
		return "bool"
	default:
		return "unknown"
	}
}

// OptionValue holds exactly one of a string, an integer or a boolean.
type OptionValue struct {
	kind OptionKind
	s    string
	i    int64
	b    bool
}

// NewStringOption wraps a string value.
func NewStringOption(v string) OptionValue {
	return OptionValue{kind: StringOption, s: v}
}

// NewIntOption wraps an integer value.
func NewIntOption(v int64) OptionValue {
	return OptionValue{kind: IntOption, i: v}
}

// NewBoolOption wraps a boolean value.
func NewBoolOption(v bool) OptionValue {
	return OptionValue{kind: BoolOption, b: v}
}

// Kind returns the type of the held value.
func (v OptionValue) Kind() OptionKind {
	return v.kind
}

// Str returns the string value and whether the option holds a string.
func (v OptionValue) Str() (string, bool) {
	return v.s, v.kind == StringOption
}

// Int returns the integer value and whether the option holds an integer.
func (v OptionValue) Int() (int64, bool) {
	return v.i, v.kind == IntOption
}

// Bool returns the boolean value and whether the option holds a boolean.
func (v OptionValue) Bool() (bool, bool) {
	return v.b, v.kind == BoolOption
}

// Interface returns the held value as string, int64 or bool.
func (v OptionValue) Interface() any {
	switch v.kind {
	case IntOption:
		return v.i
	case BoolOption:
		return v.b
	default:
		return v.s
	}
}

// String renders the value for display.
func (v OptionValue) String() string {
	switch v.kind {
	case IntOption:
		return strconv.FormatInt(v.i, 10)
	case BoolOption:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// MarshalJSON encodes the held value as its native JSON type.
func (v OptionValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON string, integer or boolean.
func (v *OptionValue) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = NewStringOption(val)
	case bool:
		*v = NewBoolOption(val)
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return fmt.Errorf("option value %s is not an integer: %w", val, err)
		}
		*v = NewIntOption(i)
	default:
		return fmt.Errorf("unsupported option value %s", string(data))
	}
	return nil
}

// Options maps option names to typed values.
type Options map[string]OptionValue

// StorageConfig describes a storage backend for the host configuration system.
type StorageConfig struct {
	Backend string      `json:"BACKEND"`
	Kind    BackendKind `json:"-"`
	Options Options     `json:"OPTIONS"`
}

// Map returns the descriptor as plain Go values, matching the JSON shape.
func (c StorageConfig) Map() map[string]any {
	opts := make(map[string]any, len(c.Options))
	for k, v := range c.Options {
		opts[k] = v.Interface()
	}
	return map[string]any{
		"BACKEND": c.Backend,
		"OPTIONS": opts,
	}
}

// MarshalJSON always emits an OPTIONS object, even when empty.
func (c StorageConfig) MarshalJSON() ([]byte, error) {
	opts := c.Options
	if opts == nil {
		opts = Options{}
	}
	return json.Marshal(struct {
		Backend string  `json:"BACKEND"`
		Options Options `json:"OPTIONS"`
	}{c.Backend, opts})
}

// UnmarshalJSON decodes the descriptor shape and restores Kind from the backend identifier.
func (c *StorageConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Backend string  `json:"BACKEND"`
		Options Options `json:"OPTIONS"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Options == nil {
		raw.Options = Options{}
	}

	c.Backend = raw.Backend
	c.Kind = KindForBackend(raw.Backend)
	c.Options = raw.Options
	return nil
}

// KindForBackend maps a backend identifier back to its kind.
// Identifiers equal to a built-in class path always map to the built-in kind,
// even if the descriptor came from a custom scheme spelled that way
// (e.g. "storages.backends.s3boto3.S3Boto3Storage://"). Kind is not serialized,
// so this only affects decoded descriptors.
func KindForBackend(backend string) BackendKind {
	switch backend {
	case FileSystemStorageClass:
		return FileSystemBackend
	case InMemoryStorageClass:
		return InMemoryBackend
	case S3StorageClass:
		return S3Backend
	default:
		return CustomBackend
	}
}
