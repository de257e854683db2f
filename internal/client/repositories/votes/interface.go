package votes

import (
	"context"
	"errors"
)

// ErrAlreadyMarked is returned by Mark when the key is already present.
var ErrAlreadyMarked = errors.New("vote marker already set")

// Repository stores vote markers.
type Repository interface {
	// IsMarked reports whether key is present.
	IsMarked(ctx context.Context, key string) (bool, error)

	// Mark records key with value. It fails with ErrAlreadyMarked if key
	// is already present; the stored value is never overwritten.
	Mark(ctx context.Context, key string, value []byte) error

	// List returns every marker.
	List(ctx context.Context) (map[string][]byte, error)
}
