package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/reach-tile-matcher/internal/catalog"
	"github.com/robert-malhotra/reach-tile-matcher/internal/config"
	"github.com/robert-malhotra/reach-tile-matcher/internal/tiles"
)

func TestWriteBuckets(t *testing.T) {
	var buf bytes.Buffer
	err := writeBuckets(&buf, tiles.DateBucketMap{
		"2020-01-16": {"b"},
		"2020-01-15": {"a", "c"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Less(t, strings.Index(out, "2020-01-15"), strings.Index(out, "2020-01-16"), "keys are written in date order")

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"a", "c"}, decoded["2020-01-15"])
}

func TestWriteBuckets_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBuckets(&buf, tiles.DateBucketMap{}))
	assert.Equal(t, "{}\n", buf.String())
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := setupLogger(&buf, "warn", "json")

	logger.Info("hidden")
	logger.Warn("shown", slog.String("reach_id", "1"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"reach_id":"1"`)
}

func TestNewSearcher(t *testing.T) {
	cfg := config.CatalogConfig{BaseURL: "http://localhost", Timeout: 1, PageSize: 10}

	searcher, err := newSearcher(cfg, slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &catalog.Client{}, searcher)

	cfg.CacheSize = 8
	searcher, err = newSearcher(cfg, slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &catalog.CachedSearcher{}, searcher)
}

func TestRun_ReachesFileErrors(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PAIR_INPUT_ROOT", root)
	t.Setenv("PAIR_REACH_INDEX", "1")

	reachesJSON = "reaches.json"
	require.NoError(t, os.WriteFile(filepath.Join(root, reachesJSON), []byte(`[{"reach_id": 1, "sword": "a.nc"}]`), 0o644))

	err := run(context.Background(), &bytes.Buffer{})
	assert.Error(t, err, "reach index 1 is out of range")

	reachesJSON = "missing.json"
	err = run(context.Background(), &bytes.Buffer{})
	assert.Error(t, err)
}
