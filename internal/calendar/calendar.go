package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/journal-dates/pkg/dateutil"
)

// Year is the calendar year every journal heading is generated for
const Year = 2020

var (
	// ErrInvalidDate is returned for a month or day outside the valid range
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnderflowDate is returned when date arithmetic would leave year 1
	ErrUnderflowDate = errors.New("date before year 1")
)

// Date is a civil date in the proleptic Gregorian calendar.
// The zero value is not a valid date; build one with MakeDate.
type Date struct {
	year  int
	month Month
	day   int
}

// MakeDate validates and builds a civil date
func MakeDate(year, monthOrd, day int) (Date, error) {
	month := Month(monthOrd)
	if !month.valid() {
		return Date{}, fmt.Errorf("%w: month %d out of range 1..12", ErrInvalidDate, monthOrd)
	}
	if last := DaysIn(month, year); day < 1 || day > last {
		return Date{}, fmt.Errorf("%w: day %d out of range 1..%d for %s %d", ErrInvalidDate, day, last, month, year)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DaysIn returns the number of days month has in year
func DaysIn(month Month, year int) int {
	return dateutil.DaysInMonth(year, month.timeMonth())
}

func fromTime(t time.Time) Date {
	return Date{year: t.Year(), month: monthFromOrdinal(int(t.Month())), day: t.Day()}
}

// Year returns the date's year
func (d Date) Year() int { return d.year }

// Month returns the date's month
func (d Date) Month() Month { return d.month }

// Day returns the day of the month
func (d Date) Day() int { return d.day }

// Time returns the date as midnight UTC
func (d Date) Time() time.Time {
	return dateutil.Civil(d.year, d.month.timeMonth(), d.day)
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return dateutil.FormatISO(d.Time())
}

// Weekday returns the civil weekday of the date
func (d Date) Weekday() Weekday {
	return weekdayFromTime(d.Time().Weekday())
}

// AddDays returns the date n calendar days away, crossing month and year boundaries as needed
func (d Date) AddDays(n int) (Date, error) {
	t := dateutil.AddDays(d.Time(), n)
	if t.Year() < 1 {
		return Date{}, fmt.Errorf("%w: %s %+d days", ErrUnderflowDate, d, n)
	}
	return fromTime(t), nil
}

// WeekdayOf returns the civil weekday of d
func WeekdayOf(d Date) Weekday {
	return d.Weekday()
}

// MinusSevenDays returns the date exactly one week before d
func MinusSevenDays(d Date) (Date, error) {
	return d.AddDays(-7)
}
