// Package swot reads reach observation times from SWOT river product files.
package swot

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/robert-malhotra/reach-tile-matcher/internal/ncdata"
	"github.com/robert-malhotra/reach-tile-matcher/internal/tiles"
)

// ErrNoObservations is returned when a reach has no observation times.
var ErrNoObservations = errors.New("no observations")

// Reader reads the reach/time series of SWOT files.
type Reader struct {
	Opener ncdata.Opener
}

// NewReader creates a Reader.
func NewReader(opener ncdata.Opener) *Reader {
	return &Reader{Opener: opener}
}

// timeFill is the documented reach/time fill value of SWOT river products,
// used when a file does not declare _FillValue.
const timeFill = -999999999999

// int64 seconds bounds as float64; 2^63 is exact.
const (
	minSeconds = -(1 << 63)
	maxSeconds = 1 << 63
)

// Times returns the observation times in the file at path. Values are
// seconds since the Unix epoch and are returned in UTC. Fill values, NaN and
// infinities are skipped.
func (r *Reader) Times(path string) ([]time.Time, error) {
	ds, err := r.Opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	v, err := ds.Variable("reach", "time")
	if err != nil {
		return nil, err
	}
	seconds, err := ncdata.Floats(v.Values)
	if err != nil {
		return nil, fmt.Errorf("%s: reach/time: %w", path, err)
	}

	fill, ok := v.FillFloat()
	if !ok {
		fill = timeFill
	}

	times := make([]time.Time, 0, len(seconds))
	for i, s := range seconds {
		if s == fill || math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		if s < minSeconds || s >= maxSeconds {
			return nil, fmt.Errorf("%w: %s: reach/time[%d] = %g is outside the representable range", ncdata.ErrDataset, path, i, s)
		}
		sec, frac := math.Modf(s)
		times = append(times, time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC())
	}
	return times, nil
}

// ObservationRange spans the calendar days of the first and last
// observation.
func ObservationRange(times []time.Time) (tiles.DateRange, error) {
	if len(times) == 0 {
		return tiles.DateRange{}, ErrNoObservations
	}
	return tiles.NewDateRange(times[0], times[len(times)-1])
}
