package journal

import (
	"strconv"
	"strings"

	"github.com/username/journal-dates/internal/calendar"
)

// Request asks for headings for days Start..End of Month in calendar.Year
type Request struct {
	Month calendar.Month
	Start int
	End   int
}

// ParseRequest parses and validates the three positional CLI arguments
func ParseRequest(month, start, end string) (Request, error) {
	m, err := calendar.ParseMonth(month)
	if err != nil {
		return Request{}, &UsageError{Msg: err.Error()}
	}

	s, err := parseDay("start", start)
	if err != nil {
		return Request{}, err
	}
	e, err := parseDay("end", end)
	if err != nil {
		return Request{}, err
	}

	req := Request{Month: m, Start: s, End: e}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

func parseDay(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, NewUsageError("%s must be an unsigned decimal integer, got %q", name, value)
	}
	if n < 1 || n > 31 {
		return 0, NewUsageError("%s must be between 1 and 31, got %d", name, n)
	}
	return int(n), nil
}

// Validate checks 1 <= Start <= End <= days in Month
func (r Request) Validate() error {
	if r.Month < calendar.January || r.Month > calendar.December {
		return NewUsageError("invalid month %d", int(r.Month))
	}
	if r.Start < 1 {
		return NewUsageError("start must be at least 1, got %d", r.Start)
	}
	if r.Start > r.End {
		return NewUsageError("start (%d) must not be after end (%d)", r.Start, r.End)
	}
	if last := calendar.DaysIn(r.Month, calendar.Year); r.End > last {
		return NewUsageError("%s %d has only %d days, got end %d", r.Month, calendar.Year, last, r.End)
	}
	return nil
}

// Days returns the number of day headings the request produces
func (r Request) Days() int {
	return r.End - r.Start + 1
}

// CountSundays returns the number of recap banners the request produces
func CountSundays(r Request) (int, error) {
	n := 0
	for day := r.Start; day <= r.End; day++ {
		d, err := calendar.MakeDate(calendar.Year, r.Month.Ordinal(), day)
		if err != nil {
			return 0, &InternalError{Op: "make date", Err: err}
		}
		if calendar.WeekdayOf(d) == calendar.Sunday {
			n++
		}
	}
	return n, nil
}
