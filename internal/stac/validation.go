package stac

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ValidateSearchRequest validates an outgoing STAC search request.
func ValidateSearchRequest(req *SearchRequest) error {
	if req == nil {
		return fmt.Errorf("search request cannot be nil")
	}

	if len(req.Collections) == 0 {
		return fmt.Errorf("at least one collection is required")
	}
	for i, coll := range req.Collections {
		if strings.TrimSpace(coll) == "" {
			return fmt.Errorf("collection at index %d cannot be empty", i)
		}
	}

	if len(req.Intersects) > 0 && !json.Valid(req.Intersects) {
		return fmt.Errorf("intersects must be valid GeoJSON geometry")
	}

	if req.DateTime != "" {
		if err := ValidateDatetime(req.DateTime); err != nil {
			return fmt.Errorf("invalid datetime: %w", err)
		}
	}

	if req.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", req.Limit)
	}

	return nil
}

// ValidateDatetime validates a datetime string according to RFC 3339 / ISO 8601
func ValidateDatetime(dt string) error {
	if dt == "" {
		return fmt.Errorf("datetime cannot be empty")
	}

	if dt == ".." || dt == "../.." {
		return nil
	}

	if strings.Contains(dt, "/") {
		_, _, err := ParseDatetimeInterval(dt)
		return err
	}

	if _, err := time.Parse(time.RFC3339, dt); err != nil {
		return fmt.Errorf("invalid datetime format, expected RFC 3339: %w", err)
	}

	return nil
}

// ParseDatetimeInterval parses a datetime interval string into start and end times
// Supports formats:
// - "2023-01-01T00:00:00Z/2023-12-31T23:59:59Z" (closed interval)
// - "2023-01-01T00:00:00Z/.." (start time only)
// - "../2023-12-31T23:59:59Z" (end time only)
// - ".." or "../.." (open interval, both nil)
func ParseDatetimeInterval(dt string) (start, end *time.Time, err error) {
	if dt == "" {
		return nil, nil, fmt.Errorf("datetime interval cannot be empty")
	}

	if dt == ".." || dt == "../.." {
		return nil, nil, nil
	}

	parts := strings.Split(dt, "/")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("invalid datetime interval format, expected 'start/end', got: %s", dt)
	}

	startStr := strings.TrimSpace(parts[0])
	endStr := strings.TrimSpace(parts[1])

	if startStr != "" && startStr != ".." {
		t, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start datetime: %w", err)
		}
		start = &t
	}

	if endStr != "" && endStr != ".." {
		t, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end datetime: %w", err)
		}
		end = &t
	}

	if start != nil && end != nil && start.After(*end) {
		return nil, nil, fmt.Errorf("start datetime (%s) must be before or equal to end datetime (%s)", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return start, end, nil
}
