package implementations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aymericzip/benchmark-intl/benchmark"
)

var testInstant = time.Date(2026, time.March, 7, 14, 5, 0, 0, time.UTC)

func TestUncachedConstructsOnEveryCall(t *testing.T) {
	s := NewUncachedStrategy().(*UncachedStrategy)
	opts := benchmark.DefaultOptions()

	for i := 1; i <= 5; i++ {
		_, err := s.Formatter("en-US", opts)
		require.NoError(t, err)
		assert.Equal(t, int64(i), s.Constructions())
	}
}

func TestCachedReusesHandles(t *testing.T) {
	raw, err := NewCachedStrategy()
	require.NoError(t, err)
	s := raw.(*CachedStrategy)
	defer s.Close()
	opts := benchmark.DefaultOptions()

	for i := 0; i < 10; i++ {
		_, err := s.Formatter("en-US", opts)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), s.Constructions())

	_, err = s.Formatter("fr-FR", opts)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.Constructions())

	// Different options are a different cache entry for the same locale.
	_, err = s.Formatter("en-US", benchmark.FormatOptions{DateStyle: "short"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Constructions())
}

func TestStrategiesAreInterchangeable(t *testing.T) {
	cached, err := NewCachedStrategy()
	require.NoError(t, err)
	defer cached.Close()
	uncached := NewUncachedStrategy()
	opts := benchmark.DefaultOptions()

	for _, locale := range []string{"en-US", "fr-FR", "ja-JP", "ar-EG"} {
		uf, err := uncached.Formatter(locale, opts)
		require.NoError(t, err)
		cf, err := cached.Formatter(locale, opts)
		require.NoError(t, err)

		assert.Equal(t, uf.Format(testInstant), cf.Format(testInstant),
			"strategies must produce identical output for %s", locale)
	}
}

func TestFormatterRejectsMalformedLocale(t *testing.T) {
	_, err := NewUncachedStrategy().Formatter("!!not a locale!!", benchmark.DefaultOptions())
	require.Error(t, err)
}

func TestFormatStyles(t *testing.T) {
	tests := []struct {
		name string
		opts benchmark.FormatOptions
		want string
	}{
		{"full with time", benchmark.FormatOptions{DateStyle: "full", TimeStyle: "short"}, "Saturday, March 7, 2026 14:05"},
		{"long with time", benchmark.FormatOptions{DateStyle: "long", TimeStyle: "short"}, "March 7, 2026 14:05"},
		{"medium date only", benchmark.FormatOptions{DateStyle: "medium"}, "Mar 7, 2026"},
		{"short date only", benchmark.FormatOptions{DateStyle: "short"}, "3/7/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := newDateFormatter("en-US", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Format(testInstant))
		})
	}
}

func TestShortStyleFollowsRegionFieldOrder(t *testing.T) {
	opts := benchmark.FormatOptions{DateStyle: "short"}

	f, err := newDateFormatter("en-GB", opts)
	require.NoError(t, err)
	assert.Equal(t, "7/3/2026", f.Format(testInstant))

	f, err = newDateFormatter("ja-JP", opts)
	require.NoError(t, err)
	assert.Equal(t, "2026/3/7", f.Format(testInstant))
}
