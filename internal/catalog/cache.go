package catalog

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/robert-malhotra/reach-tile-matcher/internal/stac"
)

// CachedSearcher memoizes search results by their exact parameters so that
// repeated identical point queries within a run hit the catalog once.
type CachedSearcher struct {
	next   Searcher
	cache  *lru.Cache[string, []*stac.Item]
	logger *slog.Logger
}

// NewCachedSearcher wraps next with an LRU cache holding up to size searches.
func NewCachedSearcher(next Searcher, size int) (*CachedSearcher, error) {
	cache, err := lru.New[string, []*stac.Item](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}
	return &CachedSearcher{
		next:   next,
		cache:  cache,
		logger: slog.Default(),
	}, nil
}

// WithLogger sets a custom logger for the cache.
func (s *CachedSearcher) WithLogger(logger *slog.Logger) *CachedSearcher {
	s.logger = logger
	return s
}

// Search returns cached items for params or delegates to the wrapped searcher.
func (s *CachedSearcher) Search(ctx context.Context, params *SearchParams) ([]*stac.Item, error) {
	key, err := params.key()
	if err != nil {
		return nil, fmt.Errorf("invalid search parameters: %w", err)
	}

	if items, ok := s.cache.Get(key); ok {
		s.logger.DebugContext(ctx, "search cache hit", slog.Int("items", len(items)))
		return append([]*stac.Item(nil), items...), nil
	}

	items, err := s.next.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, items)
	return append([]*stac.Item(nil), items...), nil
}

// Len returns the number of cached searches.
func (s *CachedSearcher) Len() int {
	return s.cache.Len()
}
