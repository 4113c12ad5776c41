// Package cache provides a keyed store for asynchronous lookups with
// per-key request deduplication, prefix invalidation and subscriber
// notification. A single Store instance is constructed explicitly and
// passed to every collaborator that needs it; there is no package-level
// state.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/google/uuid"
)

// Status describes the lifecycle state of a cache entry. Entries move
// idle -> loading -> {success, error}; a re-fetch re-enters through a
// fresh loading transition.
type Status string

// Status values.
const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Entry is an immutable snapshot of a cached lookup. Value holds the
// fetched value when Status is StatusSuccess; Err holds the failure when
// Status is StatusError.
type Entry struct {
	Key         string
	Status      Status
	Value       any
	Err         error
	RequestedAt time.Time
	Stale       bool
}

// entry is the mutable record behind an Entry snapshot. All fields are
// guarded by the store mutex. seq is the sequence number of the latest
// issued fetch; a completed fetch whose sequence number no longer
// matches is discarded.
type entry struct {
	key         string
	status      Status
	value       any
	err         error
	requestedAt time.Time
	stale       bool
	seq         uint64
	done        chan struct{} // closed when the current fetch settles
}

func (e *entry) snapshot() Entry {
	return Entry{
		Key:         e.key,
		Status:      e.status,
		Value:       e.value,
		Err:         e.err,
		RequestedAt: e.requestedAt,
		Stale:       e.stale,
	}
}

// Store is a process-wide cache for asynchronous lookups. It is safe
// for concurrent use by multiple goroutines. For a fixed key, at most
// one fetch is outstanding at any instant.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	subs    map[string]map[string]func(Entry) // key -> token -> callback
	tokens  map[string]string                 // token -> key
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		entries: make(map[string]*entry),
		subs:    make(map[string]map[string]func(Entry)),
		tokens:  make(map[string]string),
	}
}

// Reset drops all entries and subscriptions. In-flight fetches settle
// against dropped entries and are discarded.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
	s.subs = make(map[string]map[string]func(Entry))
	s.tokens = make(map[string]string)
}

// Close releases the store. It is equivalent to Reset and exists so the
// store can participate in ordinary resource teardown.
func (s *Store) Close() error {
	s.Reset()
	return nil
}

// Lookup returns a snapshot of the entry for key.
func (s *Store) Lookup(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	return e.snapshot(), true
}

// Invalidate marks every entry whose key equals or starts with prefix
// as stale. The next Query for a stale key re-fetches even if a success
// entry exists; a stale in-flight fetch is superseded by the next Query
// and its late response discarded.
func (s *Store) Invalidate(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if strings.HasPrefix(key, prefix) {
			e.stale = true
		}
	}
}

// Subscribe registers fn to be called with an entry snapshot on every
// genuine state transition of key. It returns an opaque token for
// Unsubscribe. Callbacks run outside the store lock and must not assume
// the entry still holds the delivered state.
func (s *Store) Subscribe(key string, fn func(Entry)) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.New().String()
	if s.subs[key] == nil {
		s.subs[key] = make(map[string]func(Entry))
	}
	s.subs[key][token] = fn
	s.tokens[token] = key
	return token
}

// Unsubscribe removes the subscription identified by token. Unknown
// tokens are ignored.
func (s *Store) Unsubscribe(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.tokens[token]
	if !ok {
		return
	}
	delete(s.tokens, token)
	delete(s.subs[key], token)
	if len(s.subs[key]) == 0 {
		delete(s.subs, key)
	}
}

// subscribers returns the callbacks for key. Callers must hold the lock.
func (s *Store) subscribers(key string) []func(Entry) {
	subs := s.subs[key]
	if len(subs) == 0 {
		return nil
	}
	fns := make([]func(Entry), 0, len(subs))
	for _, fn := range subs {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(Entry), snap Entry) {
	for _, fn := range fns {
		fn(snap)
	}
}

// Options configures a single Query call.
type Options struct {
	enabled bool
}

// Option configures Query.
type Option func(*Options)

// WithEnabled gates the query. When enabled is false, Query performs no
// fetch and leaves (or creates) an idle entry; it returns the zero
// value with a nil error. Used to gate queries on required inputs.
func WithEnabled(enabled bool) Option {
	return func(o *Options) {
		o.enabled = enabled
	}
}

// Query returns the cached value for key, fetching it with fetch if
// necessary. Concurrent calls for the same key share a single fetch:
// the entry transitions to loading synchronously, before the fetch
// goroutine runs, so callers racing on the same key always join rather
// than duplicate the request.
//
// A success or error entry is returned as-is unless it has been marked
// stale by Invalidate, in which case a fresh fetch is issued and the
// prior value replaced wholesale. Query blocks until the entry settles
// or ctx is done.
//
// Query is a package function rather than a Store method because Go
// methods cannot introduce type parameters.
func Query[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error), opts ...Option) (T, error) {
	var zero T

	o := Options{enabled: true}
	for _, opt := range opts {
		opt(&o)
	}

	if key == "" {
		return zero, pdfanalyze.Errorf(pdfanalyze.EINVALID, "cache key required")
	}

	if !o.enabled {
		s.mu.Lock()
		if _, ok := s.entries[key]; !ok {
			s.entries[key] = &entry{key: key, status: StatusIdle}
		}
		s.mu.Unlock()
		return zero, nil
	}

	for {
		s.mu.Lock()
		e, ok := s.entries[key]
		if !ok {
			e = &entry{key: key, status: StatusIdle}
			s.entries[key] = e
		}

		switch {
		case e.status == StatusSuccess && !e.stale:
			value, ok := e.value.(T)
			s.mu.Unlock()
			if !ok {
				return zero, pdfanalyze.Errorf(pdfanalyze.EINTERNAL, "cache entry %q holds %T, not the requested type", key, e.value)
			}
			return value, nil

		case e.status == StatusError && !e.stale:
			err := e.err
			s.mu.Unlock()
			return zero, err

		case e.status == StatusLoading && !e.stale:
			// Join the in-flight fetch.
			done := e.done
			s.mu.Unlock()
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-done:
			}
			continue
		}

		// Idle, or stale in any state: issue a fresh fetch. A stale
		// loading entry is superseded here; the old fetch's response
		// will fail the sequence check and be discarded.
		e.seq++
		seq := e.seq
		done := make(chan struct{})
		e.status = StatusLoading
		e.value = nil
		e.err = nil
		e.stale = false
		e.requestedAt = time.Now()
		e.done = done
		snap := e.snapshot()
		fns := s.subscribers(key)
		s.mu.Unlock()

		notify(fns, snap)

		go func() {
			value, err := fetch(ctx)
			settle(s, key, seq, done, value, err)
		}()
	}
}

// settle records a completed fetch, unless the entry has since issued a
// newer fetch, in which case the result is discarded. The done channel
// is closed either way so joined callers re-examine the entry.
func settle(s *Store, key string, seq uint64, done chan struct{}, value any, err error) {
	s.mu.Lock()
	var (
		snap    Entry
		fns     []func(Entry)
		applied bool
	)
	if e, ok := s.entries[key]; ok && e.seq == seq && e.status == StatusLoading {
		if err != nil {
			e.status = StatusError
			e.err = err
			e.value = nil
		} else {
			e.status = StatusSuccess
			e.value = value
			e.err = nil
		}
		e.done = nil
		snap = e.snapshot()
		fns = s.subscribers(key)
		applied = true
	}
	s.mu.Unlock()

	// Subscribers are informed before joined callers are woken, so a
	// caller returning from Query never races its own callbacks.
	if applied {
		notify(fns, snap)
	}
	close(done)
}
