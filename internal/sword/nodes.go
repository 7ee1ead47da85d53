// Package sword reads reach node locations from SWORD hydrography files.
package sword

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robert-malhotra/reach-tile-matcher/internal/config"
	"github.com/robert-malhotra/reach-tile-matcher/internal/ncdata"
	"github.com/robert-malhotra/reach-tile-matcher/internal/tiles"
)

const (
	nodesGroup   = "nodes"
	reachIDVar   = "reach_id"
	longitudeVar = "x"
	latitudeVar  = "y"
)

// Locator finds the nodes of a reach in the SWORD file named by the reach
// descriptor.
type Locator struct {
	Opener ncdata.Opener
	Input  config.InputConfig
	Logger *slog.Logger
}

// NewLocator creates a Locator reading files under input's root.
func NewLocator(opener ncdata.Opener, input config.InputConfig) *Locator {
	return &Locator{
		Opener: opener,
		Input:  input,
		Logger: slog.Default(),
	}
}

// WithLogger sets the logger for the locator.
func (l *Locator) WithLogger(logger *slog.Logger) *Locator {
	l.Logger = logger
	return l
}

// Locate returns the coordinates of every node whose reach id matches desc,
// in file order. A reach with no nodes yields an empty slice.
func (l *Locator) Locate(ctx context.Context, desc config.ReachDescriptor) ([]tiles.NodeCoordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := l.Input.SWORDPath(desc.SWORD)
	ds, err := l.Opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	reachIDs, lons, lats, err := readNodes(ds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	nodes := make([]tiles.NodeCoordinate, 0)
	for i, id := range reachIDs {
		if id != desc.ReachID {
			continue
		}
		nodes = append(nodes, tiles.NodeCoordinate{Longitude: lons[i], Latitude: lats[i]})
	}

	if l.Logger != nil {
		l.Logger.InfoContext(ctx, "found nodes",
			slog.String("reach_id", desc.ReachID),
			slog.String("sword", path),
			slog.Int("nodes", len(nodes)),
		)
	}

	return nodes, nil
}

// readNodes reads the parallel node arrays and checks they line up.
func readNodes(ds ncdata.Dataset) ([]string, []float64, []float64, error) {
	ids, err := ds.Variable(nodesGroup, reachIDVar)
	if err != nil {
		return nil, nil, nil, err
	}
	reachIDs, err := ncdata.Strings(ids.Values)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s/%s: %w", nodesGroup, reachIDVar, err)
	}

	lons, err := floatVariable(ds, longitudeVar)
	if err != nil {
		return nil, nil, nil, err
	}
	lats, err := floatVariable(ds, latitudeVar)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(lons) != len(reachIDs) || len(lats) != len(reachIDs) {
		return nil, nil, nil, fmt.Errorf("%w: node arrays differ in length: %s=%d %s=%d %s=%d",
			ncdata.ErrDataset, reachIDVar, len(reachIDs), longitudeVar, len(lons), latitudeVar, len(lats))
	}

	return reachIDs, lons, lats, nil
}

func floatVariable(ds ncdata.Dataset, name string) ([]float64, error) {
	v, err := ds.Variable(nodesGroup, name)
	if err != nil {
		return nil, err
	}
	values, err := ncdata.Floats(v.Values)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", nodesGroup, name, err)
	}
	return values, nil
}
