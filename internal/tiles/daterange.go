package tiles

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for bucket keys and ranges.
const DateLayout = "2006-01-02"

// DateRange is an interval of calendar days. Both ends are inclusive when
// rendered as a catalog interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ExploratoryDateRange is the fixed 2020 window used before observation
// ranges were threaded through. It is only applied when selected explicitly.
var ExploratoryDateRange = DateRange{
	Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
}

// NewDateRange truncates start and end to UTC calendar days.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: truncateDay(start), End: truncateDay(end)}
	if r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange, r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return r, nil
}

// ParseDateRange parses "start/end" where each side is a calendar date or an
// RFC3339 timestamp.
func ParseDateRange(s string) (DateRange, error) {
	s = strings.TrimSpace(s)
	startStr, endStr, ok := strings.Cut(s, "/")
	if !ok {
		return DateRange{}, fmt.Errorf("%w: must be 'start/end', got %q", ErrInvalidDateRange, s)
	}

	start, err := parseDay(startStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid start: %w", ErrInvalidDateRange, err)
	}
	end, err := parseDay(endStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid end: %w", ErrInvalidDateRange, err)
	}

	return NewDateRange(start, end)
}

// String renders the range as "YYYY-MM-DD/YYYY-MM-DD".
func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + "/" + r.End.Format(DateLayout)
}

// Interval renders the range as a STAC datetime interval covering the whole
// end day.
func (r DateRange) Interval() string {
	end := r.End.Add(24*time.Hour - time.Second)
	return r.Start.UTC().Format(time.RFC3339) + "/" + end.UTC().Format(time.RFC3339)
}

// Contains reports whether t falls on a day inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := truncateDay(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

func parseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
