// Package query is the read-only façade the views, the HTTP API and the MCP
// tools use to look up papers and overview sections.
package query

import (
	"context"
	"slices"

	"github.com/cpslab/papersite/internal/datastore"
	"github.com/cpslab/papersite/internal/papers"
)

// Response is the uniform result envelope. Load failures surface as empty
// data, never as errors.
type Response[T any] struct {
	Data T `json:"data"`
}

// API answers queries from a shared Store.
type API struct {
	store *datastore.Store
}

// New creates an API over store.
func New(store *datastore.Store) *API {
	return &API{store: store}
}

// Store returns the underlying document store.
func (a *API) Store() *datastore.Store { return a.store }

// AllPapers returns measurement, analysis and intervention papers in that order.
func (a *API) AllPapers(ctx context.Context) Response[[]papers.Paper] {
	all := slices.Clone(a.store.Papers(ctx))
	if all == nil {
		all = []papers.Paper{}
	}
	return Response[[]papers.Paper]{Data: all}
}

// PapersByCategory returns the papers of one category. Unknown categories are empty.
func (a *API) PapersByCategory(ctx context.Context, category papers.Category) Response[[]papers.Paper] {
	out := []papers.Paper{}
	for _, p := range a.store.Papers(ctx) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return Response[[]papers.Paper]{Data: out}
}

// PaperByID returns the first paper, in category order, whose id equals the
// integer parse of id. Data is nil when nothing matches.
func (a *API) PaperByID(ctx context.Context, id string) Response[*papers.Paper] {
	n, ok := ParseInt(id)
	all := a.store.Papers(ctx)
	if !ok {
		return Response[*papers.Paper]{}
	}
	for i := range all {
		if all[i].HasID(n) {
			p := all[i]
			return Response[*papers.Paper]{Data: &p}
		}
	}
	return Response[*papers.Paper]{}
}

// Categories returns the fixed category list without touching the store.
func (a *API) Categories() Response[[]papers.CategoryDescriptor] {
	return Response[[]papers.CategoryDescriptor]{Data: papers.Categories()}
}

// OverviewAll returns every overview section.
func (a *API) OverviewAll(ctx context.Context) Response[[]papers.Section] {
	sections := slices.Clone(a.store.Sections(ctx))
	if sections == nil {
		sections = []papers.Section{}
	}
	return Response[[]papers.Section]{Data: sections}
}

// OverviewBySection returns all sections keyed by key, in document order.
// Duplicate keys are all returned.
func (a *API) OverviewBySection(ctx context.Context, key string) Response[[]papers.Section] {
	out := []papers.Section{}
	for _, s := range a.store.Sections(ctx) {
		if s.Section == key {
			out = append(out, s)
		}
	}
	return Response[[]papers.Section]{Data: out}
}
