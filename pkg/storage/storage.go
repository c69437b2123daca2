package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no object exists for a reference in any
// configured backend.
var ErrNotFound = errors.New("storage: object not found")

// Object is a stored blob opened for reading. Callers own closing Body.
type Object struct {
	Ref         string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// Store is the media storage collaborator: a blob goes in, an opaque
// reference comes out, and the reference retrieves a byte stream later.
type Store interface {
	Put(ctx context.Context, ref, contentType string, body io.Reader) error
	Get(ctx context.Context, ref string) (*Object, error)
}

// NewRef builds a unique object reference, keeping the original file
// extension so content types survive the round trip.
func NewRef(prefix, originalName string) string {
	return prefix + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}
