package tiles

import (
	"context"

	"github.com/robert-malhotra/reach-tile-matcher/internal/config"
	"github.com/robert-malhotra/reach-tile-matcher/internal/stac"
)

// hlsItem builds an item whose assets are named by key.
func hlsItem(id, collection, datetime string, assets map[string]string) *stac.Item {
	item := stac.NewItem(id, collection, "1.0.0")
	if datetime != "" {
		item.Properties["datetime"] = datetime
	}
	for key, href := range assets {
		item.Assets[key] = &stac.Asset{Href: href}
	}
	return item
}

// staticLocator returns fixed nodes for every reach.
type staticLocator struct {
	nodes []NodeCoordinate
	err   error
	calls int
}

func (l *staticLocator) Locate(_ context.Context, _ config.ReachDescriptor) ([]NodeCoordinate, error) {
	l.calls++
	return l.nodes, l.err
}
