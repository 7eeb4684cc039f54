package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/journal-dates/internal/calendar"
)

func TestFormatDayHeading(t *testing.T) {
	tests := []struct {
		name    string
		weekday calendar.Weekday
		month   calendar.Month
		day     int
		want    string
	}{
		{"Single digit day", calendar.Wednesday, calendar.March, 4, "** Wed Mar 4 **\n\n\n"},
		{"Two digit day", calendar.Saturday, calendar.February, 29, "** Sat Feb 29 **\n\n\n"},
		{"Sunday", calendar.Sunday, calendar.January, 5, "** Sun Jan 5 **\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDayHeading(tt.weekday, tt.month, tt.day))
		})
	}
}

func TestFormatRecapBanner(t *testing.T) {
	end, err := calendar.MakeDate(2020, 1, 5)
	require.NoError(t, err)
	start, err := calendar.MinusSevenDays(end)
	require.NoError(t, err)

	got := FormatRecapBanner(start, end)

	assert.Equal(t, "******************** Recap: Dec 29 - Jan 5 **************************\n\n\n", got)
}

func TestFormatRecapBanner_Shape(t *testing.T) {
	end, err := calendar.MakeDate(2020, 3, 8)
	require.NoError(t, err)
	start, err := calendar.MakeDate(2020, 3, 1)
	require.NoError(t, err)

	got := FormatRecapBanner(start, end)

	line := strings.TrimSuffix(got, "\n\n\n")
	assert.NotContains(t, line, "\n")
	assert.True(t, strings.HasPrefix(line, strings.Repeat("*", 20)+" Recap: "))
	assert.False(t, strings.HasPrefix(line, strings.Repeat("*", 21)))
	assert.Equal(t, strings.Repeat("*", 20)+" Recap: Mar 1 - Mar 8 "+strings.Repeat("*", 26), line)
}
