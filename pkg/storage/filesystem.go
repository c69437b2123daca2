package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps blobs on the local filesystem under a base directory.
// References map to relative paths; traversal outside the base is refused.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(ref string) (string, error) {
	clean := filepath.Clean(ref)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage reference %q", ref)
	}
	return filepath.Join(f.dir, clean), nil
}

func (f *FileStore) Put(ctx context.Context, ref, contentType string, body io.Reader) error {
	p, err := f.path(ref)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	file, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("filesystem put %s: %w", ref, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		os.Remove(p)
		return fmt.Errorf("filesystem put %s: %w", ref, err)
	}
	return nil
}

func (f *FileStore) Get(ctx context.Context, ref string) (*Object, error) {
	p, err := f.path(ref)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("filesystem get %s: %w", ref, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(p))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Object{
		Ref:         ref,
		ContentType: contentType,
		Size:        info.Size(),
		Body:        file,
	}, nil
}
