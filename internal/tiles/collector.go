package tiles

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robert-malhotra/reach-tile-matcher/internal/catalog"
	"github.com/robert-malhotra/reach-tile-matcher/internal/config"
)

// NodeLocator resolves the nodes that make up a reach.
type NodeLocator interface {
	Locate(ctx context.Context, desc config.ReachDescriptor) ([]NodeCoordinate, error)
}

// Collector gathers the band links of every node of a reach.
type Collector struct {
	Locator     NodeLocator
	Searcher    catalog.Searcher
	Collections []string
	Logger      *slog.Logger
}

// NewCollector creates a Collector searching the given collections.
func NewCollector(locator NodeLocator, searcher catalog.Searcher, collections []string) *Collector {
	return &Collector{
		Locator:     locator,
		Searcher:    searcher,
		Collections: collections,
		Logger:      slog.Default(),
	}
}

// WithLogger sets the logger for the collector.
func (c *Collector) WithLogger(logger *slog.Logger) *Collector {
	c.Logger = logger
	return c
}

// Collect queries the catalog at every node of the reach within dateRange
// and returns the distinct links. Nodes are queried one after another; the
// first failure aborts the collection.
func (c *Collector) Collect(ctx context.Context, desc config.ReachDescriptor, dateRange DateRange) ([]string, error) {
	logger := c.logger()

	nodes, err := c.Locator.Locate(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("failed to locate nodes of reach %s: %w", desc.ReachID, err)
	}

	opts := QueryOptions{
		Collections: c.Collections,
		DateRange:   &dateRange,
	}

	seen := make(map[string]struct{})
	links := make([]string, 0)
	for i, node := range nodes {
		found, err := FindTiles(ctx, c.Searcher, node, opts)
		if err != nil {
			return nil, fmt.Errorf("node %d of reach %s: %w", i, desc.ReachID, err)
		}

		logger.DebugContext(ctx, "queried node",
			slog.String("reach_id", desc.ReachID),
			slog.String("node", node.String()),
			slog.Int("links", len(found)),
		)

		for _, link := range found {
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
			links = append(links, link)
		}
	}

	logger.InfoContext(ctx, "collected links",
		slog.String("reach_id", desc.ReachID),
		slog.String("date_range", dateRange.String()),
		slog.Int("nodes", len(nodes)),
		slog.Int("links", len(links)),
	)

	return links, nil
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
