package tiles

import "time"

// PairFunc matches grouped tiles to observation times that fall within
// tolerance of an acquisition date. No matching rule ships with this
// package; callers supply their own.
type PairFunc func(buckets DateBucketMap, observations []time.Time, tolerance time.Duration) (any, error)

// PairedObservation is a convenience result shape for PairFunc
// implementations: one observation and the links acquired near it.
type PairedObservation struct {
	Observation time.Time `json:"observation"`
	Links       []string  `json:"links"`
}
