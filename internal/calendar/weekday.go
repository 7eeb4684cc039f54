package calendar

import (
	"fmt"
	"time"
)

// Weekday is a day of the week. Weeks start on Monday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the full English weekday name
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// Abbrev returns the three-letter English abbreviation (Mon, Tue, ...)
func (w Weekday) Abbrev() string {
	if w < Monday || w > Sunday {
		return w.String()
	}
	return weekdayNames[w-1][:3]
}

func weekdayFromTime(wd time.Weekday) Weekday {
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}
