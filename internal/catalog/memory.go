package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/robert-malhotra/reach-tile-matcher/internal/stac"
)

// MemorySearcher is an in-memory Searcher. Items are registered per point
// and filtered by collection and datetime like a catalog would.
type MemorySearcher struct {
	mu      sync.Mutex
	byPoint map[[2]float64][]*stac.Item
	calls   []SearchParams
	err     error
}

// NewMemorySearcher creates an empty in-memory catalog.
func NewMemorySearcher() *MemorySearcher {
	return &MemorySearcher{byPoint: make(map[[2]float64][]*stac.Item)}
}

// Add registers items that intersect the point [lon, lat].
func (m *MemorySearcher) Add(lon, lat float64, items ...*stac.Item) *MemorySearcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]float64{lon, lat}
	m.byPoint[key] = append(m.byPoint[key], items...)
	return m
}

// FailWith makes every subsequent search return err.
func (m *MemorySearcher) FailWith(err error) *MemorySearcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Calls returns the parameters of every search performed so far.
func (m *MemorySearcher) Calls() []SearchParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SearchParams(nil), m.calls...)
}

// Search implements Searcher.
func (m *MemorySearcher) Search(ctx context.Context, params *SearchParams) ([]*stac.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := params.toRequest(0); err != nil {
		return nil, fmt.Errorf("invalid search parameters: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, *params)
	if m.err != nil {
		return nil, m.err
	}

	var key [2]float64
	if params.Intersects != nil {
		coords, err := params.Intersects.Point()
		if err != nil {
			return nil, fmt.Errorf("invalid search parameters: %w", err)
		}
		key = [2]float64{coords[0], coords[1]}
	}

	var start, end *time.Time
	if params.Datetime != "" {
		var err error
		start, end, err = stac.ParseDatetimeInterval(params.Datetime)
		if err != nil {
			return nil, fmt.Errorf("invalid search parameters: %w", err)
		}
	}

	var items []*stac.Item
	for _, item := range m.byPoint[key] {
		if len(params.Collections) > 0 && !slices.Contains(params.Collections, item.Collection) {
			continue
		}
		if !withinInterval(item, start, end) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// withinInterval reports whether the item's datetime property falls inside
// [start, end]. Items without a parseable datetime always match.
func withinInterval(item *stac.Item, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	raw, _ := item.Properties["datetime"].(string)
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return true
	}
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}
