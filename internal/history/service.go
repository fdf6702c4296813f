package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"voice-commander/pkg/log"
)

const DefaultSize = 100

// Service keeps a bounded, in-memory log of recent routing calls. The LRU
// evicts the oldest entries once the bound is reached. Safe for concurrent use.
type Service struct {
	cache *lru.Cache[string, Entry]
	l     log.Logger
}

// New creates a history service holding at most size entries.
func New(size int, l log.Logger) (*Service, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, err
	}
	return &Service{cache: cache, l: l}, nil
}

// Record stores one completed routing call, assigning ID and timestamp.
func (s *Service) Record(ctx context.Context, e Entry) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	s.cache.Add(e.ID, e)
	s.l.Debugf(ctx, "history: recorded %s (%s)", e.ID, e.Intent)
	return e
}

// Recent returns up to limit entries, newest first.
func (s *Service) Recent(limit int) []Entry {
	keys := s.cache.Keys() // oldest to newest
	if limit <= 0 || limit > len(keys) {
		limit = len(keys)
	}

	entries := make([]Entry, 0, limit)
	for i := len(keys) - 1; i >= 0 && len(entries) < limit; i-- {
		if e, ok := s.cache.Peek(keys[i]); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Len reports the number of stored entries.
func (s *Service) Len() int {
	return s.cache.Len()
}
