package repository

import (
	"fmt"
	"strings"
)

// Backend names the storage implementation chosen at startup.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendDatabase Backend = "database"
)

// ParseBackend normalizes s and rejects anything but the known backends.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case BackendMemory, BackendDatabase:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}
