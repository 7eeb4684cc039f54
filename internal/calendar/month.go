package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month, January = 1
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Months lists every month in calendar order
var Months = [12]Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// Ordinal returns the month number (1..12)
func (m Month) Ordinal() int {
	return int(m)
}

// String returns the full English month name
func (m Month) String() string {
	if !m.valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Abbrev returns the three-letter English abbreviation (Jan, Feb, ...)
func (m Month) Abbrev() string {
	if !m.valid() {
		return m.String()
	}
	return monthNames[m-1][:3]
}

func (m Month) valid() bool {
	return m >= January && m <= December
}

func (m Month) timeMonth() time.Month {
	return time.Month(m)
}

// monthFromOrdinal is only applied to ordinals produced by time.Time, which are always in range
func monthFromOrdinal(n int) Month {
	m := Month(n)
	if !m.valid() {
		panic(fmt.Sprintf("calendar: bad month ordinal %d", n))
	}
	return m
}

// ParseMonth matches a full English month name, ignoring case
func ParseMonth(name string) (Month, error) {
	name = strings.TrimSpace(name)
	for _, m := range Months {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q: expected one of %s", name, strings.Join(monthNames[:], ", "))
}
