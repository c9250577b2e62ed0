package shift

// InHolidayPeriod reports whether a date falls inside the holiday period,
// inclusive on both bounds. The bounds are month/day only: the period
// recurs every year.
func (c Config) InHolidayPeriod(d Date) bool {
	md := MonthDay{Month: d.Month(), Day: d.Day()}
	return !monthDayBefore(md, c.HolidayStart) && !monthDayBefore(c.HolidayEnd, md)
}

// MetQuota reports whether the active time meets the daily minimum for the
// date: the reduced holiday minimum inside the holiday period, the ordinary
// minimum otherwise. Meeting the threshold exactly counts.
func (c Config) MetQuota(d Date, active Seconds) bool {
	return active >= c.DailyMinimum(d)
}

// DailyMinimum returns the active-time minimum applicable on a date.
func (c Config) DailyMinimum(d Date) Seconds {
	if c.InHolidayPeriod(d) {
		return c.HolidayMinimum
	}
	return c.OrdinaryMinimum
}

func monthDayBefore(a, b MonthDay) bool {
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}
