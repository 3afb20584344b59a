// Package datastore loads the site's two JSON documents once per process and
// serves them from memory afterwards.
package datastore

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/cpslab/papersite/internal/basepath"
	"github.com/cpslab/papersite/internal/papers"
)

// Document names a data file under "<base>data/".
type Document string

const (
	DocumentPapers   Document = "papers.json"
	DocumentOverview Document = "overview.json"
)

// State is the lifecycle of one cached document.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// slot caches one decoded document. Once settled (loaded or failed) it never changes.
type slot[T any] struct {
	mu    sync.Mutex
	state State
	value T
}

func (s *slot[T]) get() (State, T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.value
}

func (s *slot[T]) settled() bool {
	st, _ := s.get()
	return st == StateLoaded || st == StateFailed
}

// begin marks the slot as loading. It returns false if the slot already settled.
func (s *slot[T]) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoaded || s.state == StateFailed {
		return false
	}
	s.state = StateLoading
	return true
}

func (s *slot[T]) settle(v T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.state, s.value = StateLoaded, v
	} else {
		s.state = StateFailed
	}
}

// Store is the process-wide cache of papers.json and overview.json.
// Construct one with New and share it between consumers.
type Store struct {
	fetcher  Fetcher
	resolver basepath.Resolver
	group    singleflight.Group

	papers   slot[[]papers.Paper]
	overview slot[[]papers.Section]
}

// New creates a Store that fetches documents through fetcher from beneath
// the given base path.
func New(fetcher Fetcher, base string) *Store {
	return &Store{
		fetcher:  fetcher,
		resolver: basepath.NewResolver(base),
	}
}

// BasePath returns the base path documents are fetched from.
func (s *Store) BasePath() string { return s.resolver.Base() }

// State reports the lifecycle state of doc.
func (s *Store) State(doc Document) State {
	switch doc {
	case DocumentPapers:
		st, _ := s.papers.get()
		return st
	case DocumentOverview:
		st, _ := s.overview.get()
		return st
	}
	return StateUninitialized
}

// EnsureLoaded fetches every document that has not settled yet. Failures are
// logged and leave the document permanently empty; they are never returned.
// If ctx ends first, EnsureLoaded returns early while the fetch carries on
// for the callers that are still waiting.
func (s *Store) EnsureLoaded(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		load(ctx, s, &s.papers, DocumentPapers, decodePapers)
		return nil
	})
	g.Go(func() error {
		load(ctx, s, &s.overview, DocumentOverview, decodeOverview)
		return nil
	})
	_ = g.Wait()
}

// Papers returns every paper tagged with its category, in category order.
func (s *Store) Papers(ctx context.Context) []papers.Paper {
	s.EnsureLoaded(ctx)
	_, v := s.papers.get()
	return v
}

// Sections returns the overview sections in document order.
func (s *Store) Sections(ctx context.Context) []papers.Section {
	s.EnsureLoaded(ctx)
	_, v := s.overview.get()
	return v
}

func load[T any](ctx context.Context, s *Store, sl *slot[T], doc Document, decode func([]byte) (T, error)) {
	if sl.settled() {
		return
	}

	ch := s.group.DoChan(string(doc), func() (any, error) {
		// A flight that finished between the settled check and DoChan
		// has already filled the slot.
		if !sl.begin() {
			return nil, nil
		}

		path := s.resolver.Document(string(doc))
		var zero T
		data, err := s.fetcher.Fetch(context.WithoutCancel(ctx), path)
		if err != nil {
			log.Printf("loading %s failed: %v", path, err)
			sl.settle(zero, false)
			return nil, nil
		}
		v, err := decode(data)
		if err != nil {
			log.Printf("decoding %s failed: %v", path, err)
			sl.settle(zero, false)
			return nil, nil
		}
		sl.settle(v, true)
		return nil, nil
	})

	select {
	case <-ch:
	case <-ctx.Done():
	}
}

func decodePapers(data []byte) ([]papers.Paper, error) {
	var doc *papers.PapersDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Normalize(), nil
}

func decodeOverview(data []byte) ([]papers.Section, error) {
	var doc *papers.OverviewDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return doc.Sections, nil
}
