package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go-talented-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should round-trip an object", func(t *testing.T) {
		fs, err := storage.NewFileStore(t.TempDir())
		assert.NoError(t, err)

		err = fs.Put(ctx, "resumes/abc.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
		assert.NoError(t, err)

		obj, err := fs.Get(ctx, "resumes/abc.pdf")
		assert.NoError(t, err)
		defer obj.Body.Close()

		data, err := io.ReadAll(obj.Body)
		assert.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
		assert.Equal(t, "application/pdf", obj.ContentType)
		assert.Equal(t, int64(8), obj.Size)
	})

	t.Run("Should return ErrNotFound for a missing reference", func(t *testing.T) {
		fs, err := storage.NewFileStore(t.TempDir())
		assert.NoError(t, err)

		_, err = fs.Get(ctx, "resumes/missing.pdf")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Should refuse traversal outside the base directory", func(t *testing.T) {
		fs, err := storage.NewFileStore(t.TempDir())
		assert.NoError(t, err)

		err = fs.Put(ctx, "../escape.txt", "text/plain", strings.NewReader("x"))
		assert.Error(t, err)
	})
}

// failingStore errors on every operation, standing in for an unreachable
// remote backend.
type failingStore struct{}

func (failingStore) Put(ctx context.Context, ref, contentType string, body io.Reader) error {
	return errors.New("backend down")
}

func (failingStore) Get(ctx context.Context, ref string) (*storage.Object, error) {
	return nil, errors.New("backend down")
}

func TestFallbackStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should write to the fallback when the primary fails", func(t *testing.T) {
		local, err := storage.NewFileStore(t.TempDir())
		assert.NoError(t, err)
		fb := storage.NewFallbackStore(failingStore{}, local, nil)

		err = fb.Put(ctx, "interviews/session.webm", "video/webm", bytes.NewReader([]byte("frames")))
		assert.NoError(t, err)

		obj, err := fb.Get(ctx, "interviews/session.webm")
		assert.NoError(t, err)
		defer obj.Body.Close()

		data, _ := io.ReadAll(obj.Body)
		assert.Equal(t, "frames", string(data))
	})

	t.Run("Should serve reads from the fallback when the primary misses", func(t *testing.T) {
		local, err := storage.NewFileStore(t.TempDir())
		assert.NoError(t, err)
		assert.NoError(t, local.Put(ctx, "resumes/a.pdf", "application/pdf", strings.NewReader("pdf")))

		fb := storage.NewFallbackStore(failingStore{}, local, nil)
		obj, err := fb.Get(ctx, "resumes/a.pdf")
		assert.NoError(t, err)
		obj.Body.Close()
	})
}

func TestNewRef(t *testing.T) {
	ref := storage.NewRef("resumes", "My Resume.PDF")
	assert.True(t, strings.HasPrefix(ref, "resumes/"))
	assert.True(t, strings.HasSuffix(ref, ".pdf"))
	assert.NotEqual(t, ref, storage.NewRef("resumes", "My Resume.PDF"))
}
