// pairobs matches HLS imagery tiles to the nodes of one SWOT river reach and
// prints the tile links grouped by acquisition date.
//
// Usage:
//
//	pairobs [--reaches_json reaches.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/reach-tile-matcher/internal/catalog"
	"github.com/robert-malhotra/reach-tile-matcher/internal/config"
	"github.com/robert-malhotra/reach-tile-matcher/internal/ncdata"
	"github.com/robert-malhotra/reach-tile-matcher/internal/pipeline"
	"github.com/robert-malhotra/reach-tile-matcher/internal/sword"
	"github.com/robert-malhotra/reach-tile-matcher/internal/swot"
	"github.com/robert-malhotra/reach-tile-matcher/internal/tiles"
)

var reachesJSON string

var rootCmd = &cobra.Command{
	Use:   "pairobs",
	Short: "Group HLS tiles over a SWOT reach by acquisition date",
	Long: "pairobs locates the SWORD nodes of a reach, searches the HLS catalog at each node\n" +
		"within the reach's SWOT observation window and prints the tile links grouped by date.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&reachesJSON, "reaches_json", "reaches.json", "reaches file under the input root")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout carries the result
	logger := setupLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	reach, err := config.SelectReach(cfg.Input.ReachesPath(reachesJSON), cfg.Input.ReachIndex)
	if err != nil {
		return err
	}

	searcher, err := newSearcher(cfg.Catalog, logger)
	if err != nil {
		return err
	}

	logger.Info("starting reach tile matching",
		"reach_id", reach.ReachID,
		"sword", reach.SWORD,
		"catalog", cfg.Catalog.BaseURL,
		"collections", cfg.Catalog.Collections,
	)

	opener := ncdata.NetCDF{}
	locator := sword.NewLocator(opener, cfg.Input).WithLogger(logger)
	collector := tiles.NewCollector(locator, searcher, cfg.Catalog.Collections).WithLogger(logger)
	p := pipeline.New(cfg.Input, swot.NewReader(opener), collector).WithLogger(logger)

	result, err := p.Run(ctx, reach)
	if err != nil {
		return err
	}

	return writeBuckets(out, result.Buckets)
}

// newSearcher builds the catalog client, cached unless the cache size is zero.
func newSearcher(cfg config.CatalogConfig, logger *slog.Logger) (catalog.Searcher, error) {
	client := catalog.NewClient(cfg.BaseURL, cfg.Timeout).
		WithLogger(logger).
		WithPageSize(cfg.PageSize).
		WithRateLimit(cfg.RateInterval)

	if cfg.CacheSize == 0 {
		return client, nil
	}

	cached, err := catalog.NewCachedSearcher(client, cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return cached.WithLogger(logger), nil
}

func writeBuckets(w io.Writer, buckets tiles.DateBucketMap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buckets); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func setupLogger(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
