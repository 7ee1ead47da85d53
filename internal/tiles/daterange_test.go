package tiles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	start := time.Date(2023, time.March, 4, 17, 30, 0, 0, time.UTC)
	end := time.Date(2023, time.June, 9, 2, 0, 0, 0, time.UTC)

	r, err := NewDateRange(start, end)
	require.NoError(t, err)

	assert.Equal(t, "2023-03-04/2023-06-09", r.String())
	assert.Equal(t, "2023-03-04T00:00:00Z/2023-06-09T23:59:59Z", r.Interval())
}

func TestNewDateRange_SameDay(t *testing.T) {
	start := time.Date(2023, time.March, 4, 1, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.March, 4, 23, 0, 0, 0, time.UTC)

	r, err := NewDateRange(end, start)
	require.NoError(t, err, "times on the same day form a one-day range")
	assert.True(t, r.Start.Equal(r.End))
}

func TestNewDateRange_Inverted(t *testing.T) {
	_, err := NewDateRange(
		time.Date(2023, time.June, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.March, 4, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "dates", input: "2020-01-01/2021-01-01", want: "2020-01-01/2021-01-01"},
		{name: "timestamps", input: "2020-01-01T12:00:00Z/2020-02-01T00:00:00Z", want: "2020-01-01/2020-02-01"},
		{name: "padded", input: " 2020-01-01/2020-01-02 ", want: "2020-01-01/2020-01-02"},
		{name: "missing separator", input: "2020-01-01", wantErr: true},
		{name: "bad start", input: "yesterday/2020-01-02", wantErr: true},
		{name: "bad end", input: "2020-01-01/soon", wantErr: true},
		{name: "open ended", input: "2020-01-01/..", wantErr: true},
		{name: "inverted", input: "2020-02-01/2020-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseDateRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestExploratoryDateRange(t *testing.T) {
	assert.Equal(t, "2020-01-01/2021-01-01", ExploratoryDateRange.String())
	assert.Equal(t, "2020-01-01T00:00:00Z/2021-01-01T23:59:59Z", ExploratoryDateRange.Interval())
}

func TestDateRangeContains(t *testing.T) {
	r, err := ParseDateRange("2020-01-10/2020-01-20")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2020, time.January, 20, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2020, time.January, 9, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2020, time.January, 21, 0, 0, 0, 0, time.UTC)))
}
