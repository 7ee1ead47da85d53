package catalog

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/robert-malhotra/reach-tile-matcher/internal/stac"
	"github.com/robert-malhotra/reach-tile-matcher/pkg/geojson"
)

// itemJSON builds a CMR-STAC style HLS item with one asset per band key.
func itemJSON(id, collection, datetime string, bands ...string) map[string]any {
	assets := map[string]any{}
	for _, band := range bands {
		assets[band] = map[string]any{
			"href":  "https://data.example.com/" + id + "." + band + ".tif",
			"title": "Download " + id + "." + band + ".tif",
		}
	}
	return map[string]any{
		"type":         "Feature",
		"stac_version": "1.0.0",
		"id":           id,
		"collection":   collection,
		"geometry":     map[string]any{"type": "Point", "coordinates": []float64{-91.2, 30.4}},
		"properties":   map[string]any{"datetime": datetime},
		"links":        []any{},
		"assets":       assets,
	}
}

// pageJSON builds an item search page with an optional next link.
func pageJSON(features []map[string]any, next map[string]any) map[string]any {
	links := []any{}
	if next != nil {
		links = append(links, next)
	}
	return map[string]any{
		"type":     "FeatureCollection",
		"features": features,
		"links":    links,
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func testParams(t *testing.T) *SearchParams {
	t.Helper()
	point, err := geojson.NewPoint(-91.2, 30.4)
	if err != nil {
		t.Fatalf("NewPoint() error: %v", err)
	}
	return &SearchParams{
		Collections: []string{"HLSL30.v2.0", "HLSS30.v2.0"},
		Intersects:  point,
		Datetime:    "2020-01-01T00:00:00Z/2021-01-01T23:59:59Z",
	}
}

func itemIDs(items []*stac.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.Id
	}
	return ids
}
