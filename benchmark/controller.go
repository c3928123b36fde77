package benchmark

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	xrand "golang.org/x/exp/rand"
)

// Variant identifies one of the two benchmark timelines.
type Variant int

const (
	Uncached Variant = iota
	Cached
	variantCount
)

func (v Variant) String() string {
	switch v {
	case Uncached:
		return "uncached"
	case Cached:
		return "cached"
	default:
		return "unknown"
	}
}

// VariantState is the externally visible state of one benchmark timeline.
type VariantState struct {
	DisplayLocale string
	Generation    int
	LastDuration  time.Duration
}

// measurementWindow is the transient record between a trigger and its
// commit. At most one is open per variant; the two variants' windows are
// fully independent.
type measurementWindow struct {
	start time.Time
	open  bool
}

// Controller orchestrates triggers for both variants and captures elapsed
// time when the triggered variant's subtree reports a commit.
//
// All methods must be called from the single render loop thread; the state
// machine relies on trigger and commit being serialized, not on locks.
type Controller struct {
	now          func() time.Time
	rng          *xrand.Rand
	alternatives []string
	logger       *slog.Logger
	sessionID    string

	states  [variantCount]VariantState
	windows [variantCount]measurementWindow
}

// NewController creates a controller whose triggers switch the display
// locale pseudo-randomly among alternatives. seed 0 uses the clock; a
// nonzero seed makes the locale choice sequence reproducible. A nil logger
// uses slog.Default().
func NewController(alternatives []string, seed uint64, logger *slog.Logger) *Controller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		now:          time.Now,
		rng:          xrand.New(xrand.NewSource(seed)),
		alternatives: alternatives,
		logger:       logger,
		sessionID:    uuid.NewString(),
	}
	for v := range c.states {
		if len(alternatives) > 0 {
			c.states[v].DisplayLocale = alternatives[0]
		}
	}
	return c
}

// SetClock replaces the wall-clock source. Test hook.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// Trigger advances the variant's generation, picks a new display locale and
// opens its measurement window. It is synchronous and never blocks.
//
// Triggering a variant whose window is still open overwrites the window;
// the prior measurement is silently lost. The returned snapshot carries the
// state the next render pass must reflect.
func (c *Controller) Trigger(v Variant) VariantState {
	st := &c.states[v]
	if len(c.alternatives) > 0 {
		st.DisplayLocale = c.alternatives[c.rng.Intn(len(c.alternatives))]
	}
	st.Generation++
	c.windows[v] = measurementWindow{start: c.now(), open: true}

	c.logger.Debug("benchmark trigger",
		slog.String("session_id", c.sessionID),
		slog.String("variant", v.String()),
		slog.Int("generation", st.Generation),
		slog.String("display_locale", st.DisplayLocale),
	)
	return *st
}

// Commit is the post-commit hook for one variant's subtree. With an open
// window it captures elapsed time into LastDuration and closes the window,
// returning (state, true). Without one — an unrelated re-render — it is a
// no-op returning (state, false), never a negative or stale duration.
func (c *Controller) Commit(v Variant) (VariantState, bool) {
	w := &c.windows[v]
	if !w.open {
		return c.states[v], false
	}
	elapsed := c.now().Sub(w.start)
	if elapsed < 0 {
		elapsed = 0
	}
	*w = measurementWindow{}

	st := &c.states[v]
	st.LastDuration = elapsed

	c.logger.Debug("benchmark commit",
		slog.String("session_id", c.sessionID),
		slog.String("variant", v.String()),
		slog.Int("generation", st.Generation),
		slog.Duration("elapsed", elapsed),
	)
	return *st, true
}

// State returns the variant's current snapshot.
func (c *Controller) State(v Variant) VariantState {
	return c.states[v]
}

// WindowOpen reports whether the variant has an uncommitted trigger.
func (c *Controller) WindowOpen(v Variant) bool {
	return c.windows[v].open
}

// SessionID identifies this controller's run in logs.
func (c *Controller) SessionID() string {
	return c.sessionID
}
