package tiles

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

// HLS file names look like HLS.L30.T10SEG.2020015T184512.v2.0.B01.tif; the
// fourth dot-delimited field carries the acquisition time with a YYYYJJJ date.
const acquisitionField = 3

// AcquisitionDate extracts the acquisition day from an HLS asset link.
func AcquisitionDate(link string) (time.Time, error) {
	name := path.Base(link)
	fields := strings.Split(name, ".")
	if len(fields) <= acquisitionField {
		return time.Time{}, fmt.Errorf("%w: %q has %d dot-delimited fields, want at least %d", ErrDateParse, name, len(fields), acquisitionField+1)
	}

	token, _, _ := strings.Cut(fields[acquisitionField], "T")
	day, err := parseJulianDay(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrDateParse, name, err)
	}
	return day, nil
}

// LinkDate returns the acquisition day of an HLS asset link as YYYY-MM-DD.
func LinkDate(link string) (string, error) {
	day, err := AcquisitionDate(link)
	if err != nil {
		return "", err
	}
	return day.Format(DateLayout), nil
}

// parseJulianDay decodes a YYYYJJJ token.
func parseJulianDay(token string) (time.Time, error) {
	if len(token) != 7 || strings.TrimLeft(token, "0123456789") != "" {
		return time.Time{}, fmt.Errorf("token %q is not YYYYJJJ", token)
	}

	year, _ := strconv.Atoi(token[:4])
	yday, _ := strconv.Atoi(token[4:])

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	daysInYear := first.AddDate(1, 0, -1).YearDay()
	if yday < 1 || yday > daysInYear {
		return time.Time{}, fmt.Errorf("day of year %d out of range 1..%d for %d", yday, daysInYear, year)
	}

	return first.AddDate(0, 0, yday-1), nil
}
