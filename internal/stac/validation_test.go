package stac

import (
	"encoding/json"
	"testing"
)

func TestValidateSearchRequest(t *testing.T) {
	point := json.RawMessage(`{"type":"Point","coordinates":[-91.2,30.4]}`)

	tests := []struct {
		name    string
		req     *SearchRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: &SearchRequest{
				Collections: []string{"HLSL30.v2.0"},
				Intersects:  point,
				DateTime:    "2020-01-01T00:00:00Z/2021-01-01T23:59:59Z",
				Limit:       250,
			},
		},
		{
			name: "no datetime",
			req: &SearchRequest{
				Collections: []string{"HLSL30.v2.0", "HLSS30.v2.0"},
				Intersects:  point,
			},
		},
		{
			name:    "nil request",
			req:     nil,
			wantErr: true,
		},
		{
			name:    "no collections",
			req:     &SearchRequest{Intersects: point},
			wantErr: true,
		},
		{
			name:    "blank collection",
			req:     &SearchRequest{Collections: []string{" "}},
			wantErr: true,
		},
		{
			name:    "invalid intersects",
			req:     &SearchRequest{Collections: []string{"a"}, Intersects: json.RawMessage(`{"type":`)},
			wantErr: true,
		},
		{
			name:    "inverted interval",
			req:     &SearchRequest{Collections: []string{"a"}, DateTime: "2021-01-01T00:00:00Z/2020-01-01T00:00:00Z"},
			wantErr: true,
		},
		{
			name:    "negative limit",
			req:     &SearchRequest{Collections: []string{"a"}, Limit: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSearchRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSearchRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDatetimeInterval(t *testing.T) {
	start, end, err := ParseDatetimeInterval("2020-01-01T00:00:00Z/..")
	if err != nil {
		t.Fatalf("ParseDatetimeInterval() error: %v", err)
	}
	if start == nil || end != nil {
		t.Errorf("expected open end, got start=%v end=%v", start, end)
	}

	if _, _, err := ParseDatetimeInterval("2020-01-01/2021-01-01"); err == nil {
		t.Error("bare dates are not RFC 3339 and should be rejected")
	}
}
