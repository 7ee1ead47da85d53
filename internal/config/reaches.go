package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ReachDescriptor identifies one reach and the hydrography file describing it.
type ReachDescriptor struct {
	ReachID string
	SWORD   string
}

// reachRecord is the on-disk form. reach_id may be a JSON number or string.
type reachRecord struct {
	ReachID json.RawMessage `json:"reach_id"`
	SWORD   string          `json:"sword"`
}

// LoadReaches loads reach descriptors from a JSON array file.
func LoadReaches(path string) ([]ReachDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reaches file %q: %w", path, err)
	}

	var records []reachRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse reaches file %q: %w", path, err)
	}

	reaches := make([]ReachDescriptor, 0, len(records))
	for i, rec := range records {
		reach, err := rec.descriptor()
		if err != nil {
			return nil, fmt.Errorf("invalid reach at index %d in %q: %w", i, path, err)
		}
		reaches = append(reaches, reach)
	}

	return reaches, nil
}

// SelectReach loads the reaches file and returns the entry at index.
func SelectReach(path string, index int) (ReachDescriptor, error) {
	reaches, err := LoadReaches(path)
	if err != nil {
		return ReachDescriptor{}, err
	}
	if index < 0 || index >= len(reaches) {
		return ReachDescriptor{}, fmt.Errorf("reach index %d out of range, %q has %d reaches", index, path, len(reaches))
	}
	return reaches[index], nil
}

func (r reachRecord) descriptor() (ReachDescriptor, error) {
	id, err := normalizeReachID(r.ReachID)
	if err != nil {
		return ReachDescriptor{}, err
	}

	if strings.TrimSpace(r.SWORD) == "" {
		return ReachDescriptor{}, fmt.Errorf("sword file name is required")
	}

	return ReachDescriptor{ReachID: id, SWORD: r.SWORD}, nil
}

// normalizeReachID accepts 73120000011 or "73120000011".
func normalizeReachID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("reach_id is required")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", fmt.Errorf("reach_id is required")
		}
		return s, nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("reach_id must be a number or string, got %s", string(raw))
	}
	return n.String(), nil
}
