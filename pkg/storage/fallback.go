package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// FallbackStore writes to the primary backend and falls back to the
// secondary when the primary is unavailable. Reads try both, so objects
// stay retrievable regardless of which backend accepted them.
type FallbackStore struct {
	primary  Store
	fallback Store
	log      *slog.Logger
}

func NewFallbackStore(primary, fallback Store, log *slog.Logger) *FallbackStore {
	return &FallbackStore{primary: primary, fallback: fallback, log: log}
}

func (s *FallbackStore) Put(ctx context.Context, ref, contentType string, body io.Reader) error {
	if s.primary != nil {
		if err := s.primary.Put(ctx, ref, contentType, body); err == nil {
			return nil
		} else if s.log != nil {
			s.log.Warn("primary storage put failed, using fallback", "ref", ref, "error", err)
		}
		// The primary may have consumed part of body; only seekable
		// bodies can be retried.
		if seeker, ok := body.(io.Seeker); ok {
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return err
			}
		}
	}
	return s.fallback.Put(ctx, ref, contentType, body)
}

func (s *FallbackStore) Get(ctx context.Context, ref string) (*Object, error) {
	if s.primary != nil {
		obj, err := s.primary.Get(ctx, ref)
		if err == nil {
			return obj, nil
		}
		if !errors.Is(err, ErrNotFound) && s.log != nil {
			s.log.Warn("primary storage get failed, trying fallback", "ref", ref, "error", err)
		}
	}
	return s.fallback.Get(ctx, ref)
}
