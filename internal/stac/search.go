package stac

import (
	"encoding/json"
	"fmt"
)

// SearchRequest is the body of a STAC item search (POST /search).
type SearchRequest struct {
	Collections []string        `json:"collections,omitempty"`
	Intersects  json.RawMessage `json:"intersects,omitempty"`
	DateTime    string          `json:"datetime,omitempty"`
	Limit       int             `json:"limit,omitempty"`
}

// Body encodes the request as a JSON search body.
func (req *SearchRequest) Body() ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}
	return data, nil
}
