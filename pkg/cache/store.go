// Package cache provides an in-memory, quota-capped store of previously
// computed bidi analyses, adapted from the teacher's virtual-disk
// peripheral: same map/mutex/quota/key-validation shape, repurposed to key
// on (text, base direction) instead of filename and hold a bidi.Result
// instead of file bytes.
package cache

import (
	"errors"
	"regexp"
	"sync"

	"gobidi/pkg/bidi"
)

// MaxEntryBytes bounds a single cached result's approximate footprint
// (levels, visual order and visual text, at 8 bytes per int and 4 per
// rune, as entrySize counts it), rejecting absurdly large batch
// lines rather than growing the cache without bound.
const MaxEntryBytes = 1 << 20

var (
	ErrNotFound      = errors.New("cache: entry not found")
	ErrInvalidKey    = errors.New("cache: invalid key")
	ErrQuotaExceeded = errors.New("cache: capacity exceeded")
)

// validKey mirrors the teacher's filename sanitizer, narrowed to the
// shape cmd/bidi actually builds: "<base>|<text>" where base is one of
// auto/ltr/rtl and text is non-empty.
var validKey = regexp.MustCompile(`^(auto|ltr|rtl)\|.+$`)

type entry struct {
	result bidi.Result
	size   int
}

// Store is a capacity-bounded cache of bidi.Result keyed by a validated
// string key. The zero value is not usable; construct with New.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]entry
	usedBytes int
	capacityB int
}

// New returns a Store that rejects writes once capacityBytes worth of
// entries are held.
func New(capacityBytes int) *Store {
	return &Store{
		entries:   make(map[string]entry),
		capacityB: capacityBytes,
	}
}

func entrySize(r bidi.Result) int {
	return len(r.Levels)*8 + len(r.VisualOrder)*8 + len(r.VisualText)*4
}

// Put stores result under key, evicting nothing — a full cache simply
// rejects further writes with ErrQuotaExceeded, same as the teacher's disk
// quota behavior, leaving eviction policy to a future caller if it ever
// matters for a long-running batch job.
func (s *Store) Put(key string, result bidi.Result) error {
	if !validKey.MatchString(key) {
		return ErrInvalidKey
	}

	size := entrySize(result)
	if size > MaxEntryBytes {
		return ErrQuotaExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldSize := 0
	if old, ok := s.entries[key]; ok {
		oldSize = old.size
	}
	if s.usedBytes-oldSize+size > s.capacityB {
		return ErrQuotaExceeded
	}

	s.entries[key] = entry{result: result, size: size}
	s.usedBytes = s.usedBytes - oldSize + size
	return nil
}

// Get returns the cached result for key, if present.
func (s *Store) Get(key string) (bidi.Result, error) {
	if !validKey.MatchString(key) {
		return bidi.Result{}, ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return bidi.Result{}, ErrNotFound
	}
	return e.result, nil
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
