// Package implementations provides the two formatter-construction
// strategies injected into the benchmark: uncached and ristretto-cached.
// Both construct the same concrete formatter; only the reuse policy differs.
package implementations

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aymericzip/benchmark-intl/benchmark"
)

// fieldOrder is the day/month/year ordering a locale's region implies.
type fieldOrder int

const (
	orderDMY fieldOrder = iota
	orderMDY
	orderYMD
)

// dateFormatter is the concrete locale-aware formatter both strategies
// hand out. Constructing one parses the BCP-47 tag and instantiates a
// message printer; that parse-and-instantiate work is the cost the harness
// compares across strategies. Month and weekday names come from Go's
// English tables; numbers go through the locale-aware printer.
type dateFormatter struct {
	printer *message.Printer
	order   fieldOrder
	opts    benchmark.FormatOptions
}

func newDateFormatter(locale string, opts benchmark.FormatOptions) (benchmark.Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("implementations: parse locale %q: %w", locale, err)
	}
	return &dateFormatter{
		printer: message.NewPrinter(tag),
		order:   orderFor(tag),
		opts:    opts,
	}, nil
}

func orderFor(tag language.Tag) fieldOrder {
	region, _ := tag.Region()
	switch region.String() {
	case "US", "PH":
		return orderMDY
	case "CN", "JP", "KR", "HU", "MN", "TW", "HK":
		return orderYMD
	default:
		return orderDMY
	}
}

func (f *dateFormatter) Format(t time.Time) string {
	out := f.date(t)
	if f.opts.TimeStyle != "" {
		out += f.printer.Sprintf(" %02d:%02d", t.Hour(), t.Minute())
	}
	return out
}

func (f *dateFormatter) date(t time.Time) string {
	y, m, d := t.Date()
	// Years go through as strings so the printer's digit grouping never
	// turns 2026 into 2,026.
	ys := strconv.Itoa(y)
	switch f.opts.DateStyle {
	case "full":
		return f.printer.Sprintf("%s, %s %d, %s", t.Weekday(), m, d, ys)
	case "long":
		return f.printer.Sprintf("%s %d, %s", m, d, ys)
	case "medium":
		return f.printer.Sprintf("%s %d, %s", m.String()[:3], d, ys)
	default: // short
		switch f.order {
		case orderMDY:
			return f.printer.Sprintf("%d/%d/%s", int(m), d, ys)
		case orderYMD:
			return f.printer.Sprintf("%s/%d/%d", ys, int(m), d)
		default:
			return f.printer.Sprintf("%d/%d/%s", d, int(m), ys)
		}
	}
}
