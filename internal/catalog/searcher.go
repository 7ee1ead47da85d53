// Package catalog searches a STAC imagery catalog for items intersecting a
// point.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/robert-malhotra/reach-tile-matcher/internal/stac"
	"github.com/robert-malhotra/reach-tile-matcher/pkg/geojson"
)

// Searcher defines the catalog capability the tile matcher depends on.
// Implementations return every matching item, exhausting pagination.
type Searcher interface {
	Search(ctx context.Context, params *SearchParams) ([]*stac.Item, error)
}

// SearchParams contains parameters for a point search.
type SearchParams struct {
	// Collections to search (STAC collection IDs)
	Collections []string

	// Intersects is the query geometry
	Intersects *geojson.Geometry

	// Datetime is a STAC datetime interval; empty means no temporal filter
	Datetime string
}

// toRequest converts params to a STAC search body with the given page size.
func (p *SearchParams) toRequest(pageSize int) (*stac.SearchRequest, error) {
	req := &stac.SearchRequest{
		Collections: p.Collections,
		DateTime:    p.Datetime,
		Limit:       pageSize,
	}

	if p.Intersects != nil {
		geom, err := json.Marshal(p.Intersects)
		if err != nil {
			return nil, fmt.Errorf("failed to encode intersects geometry: %w", err)
		}
		req.Intersects = geom
	}

	if err := stac.ValidateSearchRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// key returns a canonical string for params, used for caching.
func (p *SearchParams) key() (string, error) {
	req, err := p.toRequest(0)
	if err != nil {
		return "", err
	}
	body, err := req.Body()
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// wkt renders the query point for logs.
func (p *SearchParams) wkt() string {
	if p.Intersects == nil {
		return ""
	}
	wkt, err := geojson.ToWKT(p.Intersects)
	if err != nil {
		return p.Intersects.Type
	}
	return wkt
}
