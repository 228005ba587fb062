// Package saveload persists a running game into a single save slot.
package saveload

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSave is returned by Load when the slot is empty.
	ErrNoSave = errors.New("no saved game")
	// ErrMalformed wraps every failure to turn stored bytes back into a world.
	ErrMalformed = errors.New("malformed save")
)

// Store is one save slot.
type Store interface {
	Exists(ctx context.Context) (bool, error)
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
	Delete(ctx context.Context) error
	Close() error
}

// Open returns the store for a backend name: "file" (default) or "sqlite".
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "file":
		return NewFileStore(path)
	case "sqlite":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown save backend %q", backend)
	}
}
