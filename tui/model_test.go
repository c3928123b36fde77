package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aymericzip/benchmark-intl/benchmark"
	"github.com/aymericzip/benchmark-intl/render"
	"github.com/aymericzip/benchmark-intl/workload"
)

type stubFormatter struct{}

func (stubFormatter) Format(t time.Time) string {
	return t.Format(time.DateOnly)
}

type stubStrategy struct {
	fail bool
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) Formatter(locale string, opts benchmark.FormatOptions) (benchmark.Formatter, error) {
	if s.fail {
		return nil, errors.New("construction refused")
	}
	return stubFormatter{}, nil
}

func (s *stubStrategy) Close() error { return nil }

// steppingClock advances a millisecond on every reading so any
// trigger-to-commit span measures a positive duration.
type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

var testDataset = workload.Dataset{
	workload.Batch{"en-US", "fr-FR"},
	workload.Batch{"de-DE", "ja-JP"},
}

func newTestModel(uncached, cached benchmark.FormatterStrategy) (Model, *benchmark.Controller) {
	controller := benchmark.NewController([]string{"en-US", "fr-FR"}, 1, nil)
	controller.SetClock((&steppingClock{now: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)}).Now)

	opts := benchmark.DefaultOptions()
	trees := [2]*render.Tree{render.NewTree(uncached, opts), render.NewTree(cached, opts)}
	names := [2]string{uncached.Name(), cached.Name()}
	return NewModel(controller, testDataset, trees, names), controller
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTriggerKeyRunsFullCycle(t *testing.T) {
	m, controller := newTestModel(&stubStrategy{}, &stubStrategy{})

	updated, cmd := m.Update(keyPress('u'))
	require.NotNil(t, cmd)
	require.True(t, controller.WindowOpen(benchmark.Uncached))

	msg := cmd()
	require.IsType(t, commitMsg{}, msg)
	updated, _ = updated.Update(msg)

	st := controller.State(benchmark.Uncached)
	assert.Equal(t, 1, st.Generation)
	assert.Greater(t, st.LastDuration, time.Duration(0))
	assert.False(t, controller.WindowOpen(benchmark.Uncached))

	// The cached variant is untouched.
	assert.Equal(t, 0, controller.State(benchmark.Cached).Generation)

	view := updated.(Model).View()
	assert.Contains(t, view, "runs: 1")
	assert.Contains(t, view, "ms")
}

func TestBothKeyInterleavesVariants(t *testing.T) {
	m, controller := newTestModel(&stubStrategy{}, &stubStrategy{})

	updated, cmd := m.Update(keyPress('b'))
	require.NotNil(t, cmd)

	// Both windows are open before either commit arrives.
	assert.True(t, controller.WindowOpen(benchmark.Uncached))
	assert.True(t, controller.WindowOpen(benchmark.Cached))

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		updated, _ = updated.Update(c())
	}
	_ = updated

	for _, v := range []benchmark.Variant{benchmark.Uncached, benchmark.Cached} {
		st := controller.State(v)
		assert.Equal(t, 1, st.Generation)
		assert.Greater(t, st.LastDuration, time.Duration(0))
	}
}

func TestStaleCommitMessageIgnored(t *testing.T) {
	m, controller := newTestModel(&stubStrategy{}, &stubStrategy{})

	require.NotPanics(t, func() {
		m.Update(commitMsg{variant: benchmark.Cached})
	})
	assert.Equal(t, time.Duration(0), controller.State(benchmark.Cached).LastDuration)
	assert.Equal(t, 0, controller.State(benchmark.Cached).Generation)
}

func TestConstructionFailureKeepsPreviousDuration(t *testing.T) {
	failing := &stubStrategy{}
	m, controller := newTestModel(failing, &stubStrategy{})

	// One successful cycle first.
	updated, cmd := m.Update(keyPress('u'))
	require.NotNil(t, cmd)
	updated, _ = updated.Update(cmd())
	captured := controller.State(benchmark.Uncached).LastDuration
	require.Greater(t, captured, time.Duration(0))

	failing.fail = true
	updated, cmd = updated.Update(keyPress('u'))
	assert.Nil(t, cmd, "an aborted pass schedules no commit")

	st := controller.State(benchmark.Uncached)
	assert.Equal(t, captured, st.LastDuration, "stale-but-not-wrong: previous value stays visible")
	assert.Contains(t, updated.(Model).View(), "render aborted")
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(&stubStrategy{}, &stubStrategy{})

	updated, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.(Model).View())
}

func TestHelpListsTriggerBindings(t *testing.T) {
	m, _ := newTestModel(&stubStrategy{}, &stubStrategy{})

	view := m.View()
	for _, want := range []string{"trigger uncached", "trigger cached"} {
		if !strings.Contains(view, want) {
			t.Errorf("help footer missing %q", want)
		}
	}
}
