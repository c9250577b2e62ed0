package shift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-engine/shift"
)

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParseClock_TwelveHour(t *testing.T) {
	cases := []struct {
		in   string
		want shift.Seconds
	}{
		{"8:00:00 am", 8 * shift.Hour},
		{"5:00:00 pm", 17 * shift.Hour},
		{"12:00:00 am", 0},               // midnight folds to 0
		{"12:00:00 pm", 12 * shift.Hour}, // noon stays 12
		{"12:30:05 pm", 12*shift.Hour + 30*shift.Minute + 5},
		{"11:59:59 pm", 24*shift.Hour - 1},
		{"  9:15:00 AM ", 9*shift.Hour + 15*shift.Minute}, // trimmed, case-insensitive
	}

	for _, c := range cases {
		got, err := shift.ParseClock(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseClock_NoMarkerIsElapsedOr24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want shift.Seconds
	}{
		{"0:00:00", 0},
		{"9:00:00", 9 * shift.Hour},
		{"14:15:00", 14*shift.Hour + 15*shift.Minute},
		{"26:00:00", 26 * shift.Hour}, // elapsed values exceed a day
	}

	for _, c := range cases {
		got, err := shift.ParseClock(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseClock_Malformed(t *testing.T) {
	// The original system produced garbage on bad input; here every one of
	// these must fail loudly.
	bad := []string{
		"",
		"8:00",
		"8:00:00:00",
		"abc",
		"8:xx:00",
		"8:00:00 noon",
		"8:61:00",
		"8:00:99",
		"13:00:00 pm", // 13 not a 12-hour clock hour
		"0:30:00 am",
		"-1:00:00",
	}

	for _, in := range bad {
		_, err := shift.ParseClock(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, shift.ErrInvalidClock, in)
	}
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestSecondsString(t *testing.T) {
	assert.Equal(t, "0:00:00", shift.Seconds(0).String())
	assert.Equal(t, "9:00:00", (9 * shift.Hour).String())
	assert.Equal(t, "8:24:00", (8*shift.Hour + 24*shift.Minute).String())
	assert.Equal(t, "26:05:09", (26*shift.Hour + 5*shift.Minute + 9).String())
	assert.Equal(t, "0:00:00", shift.Seconds(-5).String(), "negatives clamp to zero")
}

func TestClockRoundTrip(t *testing.T) {
	// GIVEN: any valid clock string
	// THEN: parse -> format -> parse is a fixed point
	inputs := []string{"8:00:00 am", "12:00:00 pm", "5:45:30 pm", "14:15:00", "0:00:01"}

	for _, in := range inputs {
		first, err := shift.ParseClock(in)
		require.NoError(t, err)

		again, err := shift.ParseClock(first.String())
		require.NoError(t, err)
		assert.Equal(t, first, again, in)
		assert.Equal(t, first.String(), again.String(), in)
	}
}

func TestSecondsHours(t *testing.T) {
	h := 25*shift.Hour + 30*shift.Minute

	assert.Equal(t, 25, h.Hours(shift.RoundDown))
	assert.Equal(t, 26, h.Hours(shift.RoundUp))
	assert.Equal(t, 25, (25 * shift.Hour).Hours(shift.RoundUp), "exact hours never round up")
	assert.Equal(t, 0, shift.Seconds(-10).Hours(shift.RoundUp), "negatives clamp to zero")
}
