// Package stac provides STAC API types for item search, wrapping
// planetlabs/go-stac for core types and adding search request and page types.
package stac

import (
	gostac "github.com/planetlabs/go-stac"
)

// Re-export core types from planetlabs/go-stac for convenience
type (
	Item  = gostac.Item
	Asset = gostac.Asset
	Link  = gostac.Link
)

// ItemCollection is one page of an item search response (GeoJSON
// FeatureCollection with STAC paging links).
type ItemCollection struct {
	Type           string         `json:"type"` // "FeatureCollection"
	Features       []*gostac.Item `json:"features"`
	Links          []*gostac.Link `json:"links"`
	NumberMatched  *int           `json:"numberMatched,omitempty"`
	NumberReturned int            `json:"numberReturned,omitempty"`
}

// NextLink returns the rel="next" link, or nil on the last page.
func (ic *ItemCollection) NextLink() *gostac.Link {
	for _, link := range ic.Links {
		if link != nil && link.Rel == "next" && link.Href != "" {
			return link
		}
	}
	return nil
}

// NewItem creates a new STAC Item with the given ID and collection.
func NewItem(id, collection, version string) *gostac.Item {
	return &gostac.Item{
		Version:    version,
		Id:         id,
		Collection: collection,
		Properties: make(map[string]any),
		Assets:     make(map[string]*gostac.Asset),
		Links:      make([]*gostac.Link, 0),
	}
}
