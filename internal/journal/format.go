package journal

import (
	"fmt"
	"strings"

	"github.com/username/journal-dates/internal/calendar"
)

// blockEnd closes a heading line and leaves one blank line after it
const blockEnd = "\n\n\n"

var (
	recapOpen  = strings.Repeat("*", 20)
	recapClose = strings.Repeat("*", 26)
)

// FormatDayHeading renders a day heading
// Example: "** Wed Mar 4 **\n\n\n"
func FormatDayHeading(weekday calendar.Weekday, month calendar.Month, day int) string {
	return fmt.Sprintf("** %s %s %d **%s", weekday.Abbrev(), month.Abbrev(), day, blockEnd)
}

// FormatRecapBanner renders the recap banner for the week from start to end
// Example: "******************** Recap: Mar 1 - Mar 8 **************************\n\n\n"
func FormatRecapBanner(start, end calendar.Date) string {
	return fmt.Sprintf("%s Recap: %s %d - %s %d %s%s",
		recapOpen,
		start.Month().Abbrev(), start.Day(),
		end.Month().Abbrev(), end.Day(),
		recapClose,
		blockEnd)
}
