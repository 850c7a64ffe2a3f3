package domain_test

import (
	"testing"
	"time"

	"github.com/everolfe/matchday/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTimeRoundTrip(t *testing.T) {
	formatted := domain.FormatLocalTime(time.Date(2024, 5, 1, 18, 30, 15, 0, time.Local))
	assert.Equal(t, "2024-05-01T18:30:15", formatted)

	parsed, err := domain.ParseLocalTime(formatted)
	require.NoError(t, err)
	assert.Equal(t, 18, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())
	// No offset on the wire: the parsed value carries no zone information.
	zone, offset := parsed.Zone()
	assert.Equal(t, "UTC", zone)
	assert.Equal(t, 0, offset)
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, 5, 1, 13, 45, 12, 123, time.Local)

	start := domain.DayStart(at)
	assert.Equal(t, "2024-05-01T00:00:00", domain.FormatLocalTime(start))

	end := domain.DayEnd(at)
	assert.Equal(t, "2024-05-01T23:59:59", domain.FormatLocalTime(end))
	assert.Equal(t, int(999*time.Millisecond), end.Nanosecond())

	// Same-day range covers the entire calendar day, both edges inclusive.
	assert.True(t, start.Before(end))
	assert.Equal(t, start.Day(), end.Day())
}
