// Package pipeline runs the tile matching stages for one reach.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robert-malhotra/reach-tile-matcher/internal/config"
	"github.com/robert-malhotra/reach-tile-matcher/internal/swot"
	"github.com/robert-malhotra/reach-tile-matcher/internal/tiles"
)

// Stage names prefix the errors returned by Run.
const (
	StageObservations = "observations"
	StageCollect      = "collect"
	StageGroup        = "group"
	StagePair         = "pair"
)

// DefaultTolerance is the window passed to a configured PairFunc.
const DefaultTolerance = 24 * time.Hour

// Pipeline holds the collaborators of a run.
type Pipeline struct {
	Input        config.InputConfig
	Observations *swot.Reader
	Collector    *tiles.Collector

	// DateRangeOverride replaces the observation date range when set.
	DateRangeOverride string

	// Pair is optional; Result.Paired stays nil without it.
	Pair      tiles.PairFunc
	Tolerance time.Duration

	Logger *slog.Logger
}

// Result is the outcome of one run.
type Result struct {
	Reach     config.ReachDescriptor
	DateRange tiles.DateRange
	Links     []string
	Buckets   tiles.DateBucketMap
	Paired    any
}

// New creates a Pipeline from its stages.
func New(input config.InputConfig, observations *swot.Reader, collector *tiles.Collector) *Pipeline {
	return &Pipeline{
		Input:             input,
		Observations:      observations,
		Collector:         collector,
		DateRangeOverride: input.DateRangeOverride,
		Tolerance:         DefaultTolerance,
		Logger:            slog.Default(),
	}
}

// WithLogger sets the logger for the pipeline.
func (p *Pipeline) WithLogger(logger *slog.Logger) *Pipeline {
	p.Logger = logger
	return p
}

// WithPair sets the function that pairs buckets with observation times.
func (p *Pipeline) WithPair(pair tiles.PairFunc, tolerance time.Duration) *Pipeline {
	p.Pair = pair
	p.Tolerance = tolerance
	return p
}

// Run processes desc: it reads the reach observation times, collects tile
// links over the resulting date range and groups them by acquisition date.
func (p *Pipeline) Run(ctx context.Context, desc config.ReachDescriptor) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{Reach: desc}

	times, err := p.Observations.Times(p.Input.SWOTPath(desc.ReachID))
	if err != nil {
		return nil, stageError(StageObservations, err)
	}

	result.DateRange, err = p.dateRange(times)
	if err != nil {
		return nil, stageError(StageObservations, err)
	}

	logger.InfoContext(ctx, "processing reach",
		slog.String("reach_id", desc.ReachID),
		slog.String("date_range", result.DateRange.String()),
		slog.Int("observations", len(times)),
	)

	result.Links, err = p.Collector.Collect(ctx, desc, result.DateRange)
	if err != nil {
		return nil, stageError(StageCollect, err)
	}

	result.Buckets, err = tiles.GroupByDate(result.Links)
	if err != nil {
		return nil, stageError(StageGroup, err)
	}

	logger.InfoContext(ctx, "grouped links",
		slog.String("reach_id", desc.ReachID),
		slog.Int("dates", len(result.Buckets)),
		slog.Int("links", result.Buckets.Len()),
	)
	logger.DebugContext(ctx, "acquisition dates",
		slog.String("reach_id", desc.ReachID),
		slog.Any("dates", result.Buckets.Dates()),
	)

	if p.Pair != nil {
		result.Paired, err = p.Pair(result.Buckets, times, p.Tolerance)
		if err != nil {
			return nil, stageError(StagePair, err)
		}
	}

	return result, nil
}

// dateRange applies the configured override, falling back to the span of
// the observation times.
func (p *Pipeline) dateRange(times []time.Time) (tiles.DateRange, error) {
	override := strings.TrimSpace(p.DateRangeOverride)
	switch {
	case override == "":
		return swot.ObservationRange(times)
	case override == config.DateRangeExploratory:
		return tiles.ExploratoryDateRange, nil
	default:
		return tiles.ParseDateRange(override)
	}
}

func stageError(stage string, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}
