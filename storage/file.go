package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ruteri/storage-url/interfaces"
)

// Query parameters understood by the file system backend.
const (
	paramBaseURL                  = "base_url"
	paramFilePermissionsMode      = "file_permissions_mode"
	paramDirectoryPermissionsMode = "directory_permissions_mode"
)

// createFileSystemConfig builds a file system storage descriptor.
// URL format: file:///absolute/path or file://relative/path
// The location is authority and path joined as written, so file://tmp/media
// yields "tmp/media" and file:///tmp/files yields "/tmp/files".
func createFileSystemConfig(u interfaces.StorageURL) (interfaces.StorageConfig, error) {
	options := interfaces.Options{
		"location": interfaces.NewStringOption(u.Authority + u.Path),
	}

	if u.HasParam(paramBaseURL) {
		options[paramBaseURL] = interfaces.NewStringOption(u.GetParam(paramBaseURL))
	}

	for _, name := range []string{paramFilePermissionsMode, paramDirectoryPermissionsMode} {
		if !u.HasParam(name) {
			continue
		}
		mode, err := ParsePermissionsMode(u.GetParam(name))
		if err != nil {
			return interfaces.StorageConfig{}, fmt.Errorf("%s: %w", name, err)
		}
		options[name] = interfaces.NewIntOption(mode)
	}

	return interfaces.StorageConfig{
		Backend: interfaces.FileSystemStorageClass,
		Kind:    interfaces.FileSystemBackend,
		Options: options,
	}, nil
}

// ParsePermissionsMode parses base-8 text such as "644", "0644" or "0o644".
// A sign, surrounding whitespace and underscores between digits are accepted.
func ParsePermissionsMode(value string) (int64, error) {
	digits := strings.TrimSpace(value)

	sign := ""
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'o' || digits[1] == 'O') {
		digits = digits[2:]
	} else if strings.HasPrefix(digits, "_") {
		return 0, fmt.Errorf("%w %q", interfaces.ErrInvalidPermissionsMode, value)
	}

	// base 0 with an explicit 0o prefix keeps the literal octal and allows underscores
	mode, err := strconv.ParseInt(sign+"0o"+digits, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", interfaces.ErrInvalidPermissionsMode, value)
	}
	return mode, nil
}
