package storage

import (
	"fmt"
	"strings"

	"github.com/ruteri/storage-url/interfaces"
)

// ParseBool interprets t/true/1 and f/false/0, case-insensitively.
// Any other value fails with ErrInvalidBoolean.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "t", "true", "1":
		return true, nil
	case "f", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w %q", interfaces.ErrInvalidBoolean, value)
	}
}
