package benchmark

import "time"

// FormatOptions is the fixed option set every formatter is constructed with.
// Both strategies receive identical options so they face identical work.
type FormatOptions struct {
	// DateStyle is one of "full", "long", "medium", "short".
	DateStyle string
	// TimeStyle is one of "long", "medium", "short", or "" for date-only.
	TimeStyle string
}

// DefaultOptions returns the option set used by the harness.
func DefaultOptions() FormatOptions {
	return FormatOptions{DateStyle: "long", TimeStyle: "short"}
}

// Key returns the locale+options identity that caching strategies key on.
func (o FormatOptions) Key(locale string) string {
	return locale + "|" + o.DateStyle + "|" + o.TimeStyle
}

// Formatter formats instants for the single locale it was constructed for.
type Formatter interface {
	Format(t time.Time) string
}

// FormatterStrategy defines the interface for a formatter-construction
// strategy. This allows us to benchmark different strategies with the same
// harness: the uncached variant constructs a fresh Formatter on every call,
// the cached variant reuses handles from a locale+options-keyed cache.
// Callers must not assume either behavior, nor anything about a cache's
// eviction policy; the two variants are interchangeable through this shape.
type FormatterStrategy interface {
	// Name returns the name of the strategy.
	Name() string
	// Formatter returns a formatter for the given display locale and
	// options. Construction failures propagate to the caller unretried.
	Formatter(locale string, opts FormatOptions) (Formatter, error)
	// Close cleans up any resources used by the strategy.
	Close() error
}
