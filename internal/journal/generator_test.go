package journal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/journal-dates/internal/calendar"
	"go.uber.org/zap"
)

const bannerTail = " **************************\n\n\n"

func TestRender_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "No Sundays",
			req:  Request{Month: calendar.March, Start: 3, End: 4},
			want: "** Wed Mar 4 **\n\n\n" +
				"** Tue Mar 3 **\n\n\n",
		},
		{
			name: "Two Sundays across February",
			req:  Request{Month: calendar.March, Start: 1, End: 8},
			want: "******************** Recap: Mar 1 - Mar 8" + bannerTail +
				"** Sun Mar 8 **\n\n\n" +
				"** Sat Mar 7 **\n\n\n" +
				"** Fri Mar 6 **\n\n\n" +
				"** Thu Mar 5 **\n\n\n" +
				"** Wed Mar 4 **\n\n\n" +
				"** Tue Mar 3 **\n\n\n" +
				"** Mon Mar 2 **\n\n\n" +
				"******************** Recap: Feb 23 - Mar 1" + bannerTail +
				"** Sun Mar 1 **\n\n\n",
		},
		{
			name: "Year rollover",
			req:  Request{Month: calendar.January, Start: 5, End: 5},
			want: "******************** Recap: Dec 29 - Jan 5" + bannerTail +
				"** Sun Jan 5 **\n\n\n",
		},
		{
			name: "Leap day",
			req:  Request{Month: calendar.February, Start: 28, End: 29},
			want: "** Sat Feb 29 **\n\n\n" +
				"** Fri Feb 28 **\n\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.req)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render(%+v) mismatch (-want +got):\n%s", tt.req, diff)
			}
		})
	}
}

func TestRender_InvalidRequest(t *testing.T) {
	var b strings.Builder
	err := NewGenerator(&b, zap.NewNop()).Run(Request{Month: calendar.February, Start: 28, End: 30})

	var usage *UsageError
	require.True(t, errors.As(err, &usage))
	assert.Empty(t, b.String())
}

// Every month and every day range of the fixed year obeys the block layout
func TestRun_Properties(t *testing.T) {
	for _, m := range calendar.Months {
		last := calendar.DaysIn(m, calendar.Year)
		for start := 1; start <= last; start += 3 {
			for end := start; end <= last; end += 4 {
				req := Request{Month: m, Start: start, End: end}
				out, err := Render(req)
				require.NoError(t, err, "%+v", req)

				sundays, err := CountSundays(req)
				require.NoError(t, err)

				checkBlocks(t, req, out, sundays)
			}
		}
	}
}

func checkBlocks(t *testing.T, req Request, out string, wantRecaps int) {
	t.Helper()

	require.True(t, strings.HasSuffix(out, "\n\n\n"), "%+v: output must end with a blank line", req)
	blocks := strings.Split(strings.TrimSuffix(out, "\n\n\n"), "\n\n\n")

	headings, recaps := 0, 0
	prevDay := req.End + 1
	for i, block := range blocks {
		if strings.Contains(block, "Recap:") {
			recaps++
			require.Less(t, i+1, len(blocks), "%+v: recap must not be the last block", req)
			require.True(t, strings.HasPrefix(blocks[i+1], "** Sun "), "%+v: recap must precede a Sunday, got %q", req, blocks[i+1])
			continue
		}

		headings++
		fields := strings.Fields(block)
		require.Len(t, fields, 5, "%+v: bad heading %q", req, block)
		assert.Equal(t, req.Month.Abbrev(), fields[2])

		d, err := calendar.MakeDate(calendar.Year, req.Month.Ordinal(), atoi(t, fields[3]))
		require.NoError(t, err)
		assert.Equal(t, calendar.WeekdayOf(d).Abbrev(), fields[1])
		assert.Less(t, d.Day(), prevDay, "%+v: headings must be strictly descending", req)
		prevDay = d.Day()

		if fields[1] == "Sun" {
			require.Greater(t, i, 0)
			assert.Contains(t, blocks[i-1], "Recap:", "%+v: Sunday %d must follow a recap", req, d.Day())
		}
	}

	assert.Equal(t, req.Days(), headings, "%+v: heading count", req)
	assert.Equal(t, wantRecaps, recaps, "%+v: recap count", req)
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n := 0
	for _, c := range s {
		require.True(t, c >= '0' && c <= '9', "not a number: %q", s)
		n = n*10 + int(c-'0')
	}
	return n
}

type failingWriter struct {
	okWrites int
	written  strings.Builder
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.okWrites == 0 {
		return 0, errDiskFull
	}
	w.okWrites--
	return w.written.Write(p)
}

func TestRun_WriteFailure(t *testing.T) {
	w := &failingWriter{okWrites: 2}
	err := NewGenerator(w, zap.NewNop()).Run(Request{Month: calendar.March, Start: 1, End: 8})

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "want IOError, got %v", err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t,
		"******************** Recap: Mar 1 - Mar 8"+bannerTail+"** Sun Mar 8 **\n\n\n",
		w.written.String())
}
