package dateutil

import "time"

// Civil returns midnight UTC of the given civil date.
// Out-of-range month and day values are normalized the way time.Date does.
func Civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) for the given date in UTC
func StartOfDay(date time.Time) time.Time {
	date = date.UTC()
	return Civil(date.Year(), date.Month(), date.Day())
}

// IsLeapYear reports whether year has a February 29 in the proleptic Gregorian calendar
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month for the given year.
// Returns 0 for a month outside January..December.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// AddDays shifts the date by n calendar days, keeping the result at UTC midnight
func AddDays(date time.Time, n int) time.Time {
	return StartOfDay(date).AddDate(0, 0, n)
}

// IsSunday returns true if the date falls on a Sunday
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatISO formats a date as YYYY-MM-DD
// Example: 2020-03-08
func FormatISO(date time.Time) string {
	return date.Format("2006-01-02")
}
