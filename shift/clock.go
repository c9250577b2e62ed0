/*
clock.go - Clock-time and duration codec

PURPOSE:

	Decodes the 12-hour clock strings and h:mm:ss durations used by the shift
	file into whole seconds, and encodes seconds back into the canonical
	display form. Pure functions, no I/O.

WIRE FORMS:

	"8:00:00 am"   instant-in-day, 12-hour clock with am/pm marker
	"5:30:00 pm"   instant-in-day
	"14:15:00"     instant-in-day, 24-hour (no marker)
	"9:00:00"      elapsed duration (same encoding, no marker)

	Instants decode into [0, 86400). Elapsed values are unbounded above;
	26 hours round-trips as "26:00:00".

SEE ALSO:
  - idle.go: interval arithmetic on decoded instants
  - types.go: the calendar Date type
*/
package shift

import (
	"fmt"
	"strconv"
	"strings"
)

// Seconds is an instant-in-day (seconds since local midnight) or an elapsed
// duration, depending on context. Both serialize as h:mm:ss.
type Seconds int

const (
	Minute Seconds = 60
	Hour   Seconds = 3600
	Day    Seconds = 86400
)

// ParseClock decodes a clock or duration string into seconds.
// Input is trimmed and case-insensitive. An optional trailing "am"/"pm"
// marker selects 12-hour decoding; without it the hour field is taken as a
// 24-hour or elapsed value. Returns ErrInvalidClock on anything malformed.
func ParseClock(text string) (Seconds, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidClock)
	}

	token := s
	marker := ""
	if i := strings.IndexByte(s, ' '); i >= 0 {
		token, marker = s[:i], strings.TrimSpace(s[i+1:])
		if marker != "am" && marker != "pm" {
			return 0, fmt.Errorf("%w: unknown marker %q in %q", ErrInvalidClock, marker, text)
		}
	}

	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: want h:mm:ss, got %q", ErrInvalidClock, text)
	}

	var hms [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: bad field %q in %q", ErrInvalidClock, p, text)
		}
		hms[i] = n
	}
	h, m, sec := hms[0], hms[1], hms[2]
	if m > 59 || sec > 59 {
		return 0, fmt.Errorf("%w: minutes/seconds out of range in %q", ErrInvalidClock, text)
	}

	// Standard 12-hour decoding: pm adds 12h unless the hour is already 12,
	// am folds 12 back to 0.
	switch marker {
	case "am", "pm":
		if h < 1 || h > 12 {
			return 0, fmt.Errorf("%w: hour %d outside 12-hour range in %q", ErrInvalidClock, h, text)
		}
		if marker == "pm" && h != 12 {
			h += 12
		}
		if marker == "am" && h == 12 {
			h = 0
		}
	}

	return Seconds(h)*Hour + Seconds(m)*Minute + Seconds(sec), nil
}

// String formats seconds as h:mm:ss with the hour unpadded. Negative values
// clamp to zero; values of a day or more keep accumulating hours (26:00:00),
// which is the intended form for elapsed durations.
func (s Seconds) String() string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", s/Hour, (s%Hour)/Minute, s%Minute)
}

// Hours returns the number of whole hours under the given rounding mode.
func (s Seconds) Hours(mode Rounding) int {
	if s <= 0 {
		return 0
	}
	if mode == RoundUp {
		return int((s + Hour - 1) / Hour)
	}
	return int(s / Hour)
}
