/*
idle.go - Shift duration and idle-time segmentation

PURPOSE:

	Derives the two elapsed-time metrics of a shift from its clock strings:
	total duration, and the portion of it falling outside the daily delivery
	window (idle time). Active time is their difference.

MIDNIGHT HANDLING:

	An end instant earlier than the start instant means the shift crossed
	midnight; the end is pushed forward 24h. The idle walk is day-granular,
	so a shift spanning several midnights segments correctly even though real
	shifts cross at most one.
*/
package shift

// ShiftDuration returns the elapsed time between two clock strings,
// treating end < start as a midnight crossing.
func (c Config) ShiftDuration(startClock, endClock string) (Seconds, error) {
	start, end, err := decodeInterval(startClock, endClock)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// IdleTime returns the portion of [start, end) outside the delivery window.
// Each calendar day contributes its own window; time before the window start
// and after the window end accumulates as idle.
func (c Config) IdleTime(startClock, endClock string) (Seconds, error) {
	start, end, err := decodeInterval(startClock, endClock)
	if err != nil {
		return 0, err
	}

	var idle Seconds
	for dayStart := Seconds(0); dayStart < end; dayStart += Day {
		idle += overlap(start, end, dayStart, dayStart+c.WindowStart)
		idle += overlap(start, end, dayStart+c.WindowEnd, dayStart+Day)
	}
	return idle, nil
}

// ActiveTime returns duration minus idle, clamped at zero.
func (c Config) ActiveTime(duration, idle Seconds) Seconds {
	active := duration - idle
	if active < 0 {
		active = 0
	}
	return active
}

func decodeInterval(startClock, endClock string) (start, end Seconds, err error) {
	start, err = ParseClock(startClock)
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseClock(endClock)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		end += Day // crossed midnight
	}
	return start, end, nil
}

// overlap returns the length of the intersection of [aStart, aEnd) and
// [bStart, bEnd), zero if they are disjoint.
func overlap(aStart, aEnd, bStart, bEnd Seconds) Seconds {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}
