package journal

import (
	"io"
	"strings"

	"github.com/username/journal-dates/internal/calendar"
	"go.uber.org/zap"
)

// Generator writes journal headings to an output sink
type Generator struct {
	out    io.Writer
	logger *zap.Logger
}

// NewGenerator creates a generator writing to out
func NewGenerator(out io.Writer, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		out:    out,
		logger: logger,
	}
}

// Run writes one heading per day from End down to Start, with a recap
// banner in front of every Sunday. It stops at the first failed write;
// anything already written stays written.
func (g *Generator) Run(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	g.logger.Info("Generating journal headings",
		zap.Stringer("month", req.Month),
		zap.Int("start", req.Start),
		zap.Int("end", req.End),
		zap.Int("year", calendar.Year))

	recaps := 0
	for day := req.End; day >= req.Start; day-- {
		d, err := calendar.MakeDate(calendar.Year, req.Month.Ordinal(), day)
		if err != nil {
			return &InternalError{Op: "make date", Err: err}
		}
		weekday := calendar.WeekdayOf(d)

		if weekday == calendar.Sunday {
			weekAgo, err := calendar.MinusSevenDays(d)
			if err != nil {
				return &InternalError{Op: "recap window", Err: err}
			}
			if err := g.write(FormatRecapBanner(weekAgo, d)); err != nil {
				return err
			}
			recaps++
			g.logger.Debug("Recap banner written",
				zap.Stringer("from", weekAgo),
				zap.Stringer("to", d))
		}

		if err := g.write(FormatDayHeading(weekday, req.Month, day)); err != nil {
			return err
		}
		g.logger.Debug("Day heading written",
			zap.Stringer("date", d),
			zap.Stringer("weekday", weekday))
	}

	g.logger.Info("Journal headings generated",
		zap.Int("days", req.Days()),
		zap.Int("recaps", recaps))

	return nil
}

func (g *Generator) write(s string) error {
	if _, err := io.WriteString(g.out, s); err != nil {
		g.logger.Error("Failed to write output", zap.Error(err))
		return &IOError{Err: err}
	}
	return nil
}

// Render returns the whole output for req as a string
func Render(req Request) (string, error) {
	var b strings.Builder
	if err := NewGenerator(&b, nil).Run(req); err != nil {
		return "", err
	}
	return b.String(), nil
}
