package tiles

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/robert-malhotra/reach-tile-matcher/internal/catalog"
	"github.com/robert-malhotra/reach-tile-matcher/internal/stac"
	"github.com/robert-malhotra/reach-tile-matcher/pkg/geojson"
)

// DefaultCollections are the HLS Landsat and Sentinel-2 surface reflectance
// collections.
var DefaultCollections = []string{"HLSL30.v2.0", "HLSS30.v2.0"}

// bandPrefix marks spectral band assets in HLS items.
const bandPrefix = "B"

// BandFilter selects which assets of an item are emitted. A nil filter emits
// every band asset.
type BandFilter []string

// Bands builds a filter for the named bands.
func Bands(names ...string) BandFilter {
	return BandFilter(names)
}

// QueryOptions controls a single-node tile query.
type QueryOptions struct {
	// Collections to search; DefaultCollections when empty
	Collections []string

	// Bands to extract; nil extracts every band asset
	Bands BandFilter

	// Limit truncates the item list after retrieval; zero means no limit
	Limit int

	// DateRange restricts acquisitions; nil searches all time
	DateRange *DateRange
}

// PointGeometry converts a [lon, lat] pair into a GeoJSON point.
func PointGeometry(pair []float64) (*geojson.Geometry, error) {
	if len(pair) != 2 {
		return nil, fmt.Errorf("%w: point must be in the form of [lon, lat], got %d values", ErrInputShape, len(pair))
	}
	geom, err := geojson.NewPointFromPair(pair)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputShape, err)
	}
	return geom, nil
}

// FindTiles searches the catalog for items intersecting node and returns
// their asset links in item-then-band order.
func FindTiles(ctx context.Context, searcher catalog.Searcher, node NodeCoordinate, opts QueryOptions) ([]string, error) {
	geom, err := PointGeometry(node.Pair())
	if err != nil {
		return nil, err
	}

	collections := opts.Collections
	if len(collections) == 0 {
		collections = DefaultCollections
	}

	params := &catalog.SearchParams{
		Collections: collections,
		Intersects:  geom,
	}
	if opts.DateRange != nil {
		params.Datetime = opts.DateRange.Interval()
	}

	items, err := searcher.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search at %s failed: %w", node, err)
	}

	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}

	return AssetLinks(items, opts.Bands)
}

// AssetLinks extracts asset hrefs from items. With an explicit filter every
// named band must be present on every item.
func AssetLinks(items []*stac.Item, bands BandFilter) ([]string, error) {
	links := make([]string, 0)
	for _, item := range items {
		if item == nil {
			continue
		}

		if bands == nil {
			for _, key := range bandKeys(item) {
				links = append(links, item.Assets[key].Href)
			}
			continue
		}

		for _, band := range bands {
			asset, ok := item.Assets[band]
			if !ok || asset == nil {
				return nil, fmt.Errorf("%w: item %q has no asset %q", ErrBandNotFound, item.Id, band)
			}
			links = append(links, asset.Href)
		}
	}
	return links, nil
}

// bandKeys returns the item's band asset keys in sorted order.
func bandKeys(item *stac.Item) []string {
	keys := make([]string, 0, len(item.Assets))
	for key, asset := range item.Assets {
		if asset != nil && strings.HasPrefix(key, bandPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
