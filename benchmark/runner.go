package benchmark

import (
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Subtree renders one variant's label tree for a display locale and
// generation, reporting how many label instances it constructed. It is the
// seam between the controller and the rendering layer.
type Subtree interface {
	Render(displayLocale string, generation int) (constructed int, err error)
}

// Result holds the collected metrics from one variant's headless run.
type Result struct {
	StrategyName string
	Runs         int
	Constructed  int
	Durations    []time.Duration
}

// Avg returns the mean duration across runs.
func (r Result) Avg() time.Duration {
	if len(r.Durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.Durations {
		total += d
	}
	return total / time.Duration(len(r.Durations))
}

// P95 returns the 95th-percentile duration across runs.
func (r Result) P95() time.Duration {
	if len(r.Durations) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(r.Durations))
	copy(sorted, r.Durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(float64(len(sorted)) * 0.95)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Runner drives repeated trigger→render→commit cycles through a controller
// without a terminal UI. Commit fires synchronously after each render pass,
// so headless numbers carry no event-loop skew.
type Runner struct {
	controller *Controller
	logger     *slog.Logger
}

// NewRunner wires a runner to a controller. A nil logger uses slog.Default().
func NewRunner(controller *Controller, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{controller: controller, logger: logger}
}

// Run triggers the variant runs times, rendering its subtree after every
// trigger and committing immediately after the pass. A render failure stops
// the run; durations collected so far stay in the returned result.
func (r *Runner) Run(v Variant, name string, subtree Subtree, runs int) (Result, error) {
	result := Result{
		StrategyName: name,
		Durations:    make([]time.Duration, 0, runs),
	}

	r.logger.Info("starting headless run",
		slog.String("session_id", r.controller.SessionID()),
		slog.String("strategy", name),
		slog.Int("runs", runs),
	)

	for i := 0; i < runs; i++ {
		st := r.controller.Trigger(v)
		constructed, err := subtree.Render(st.DisplayLocale, st.Generation)
		if err != nil {
			return result, fmt.Errorf("benchmark: run %d of %s: %w", i+1, v, err)
		}
		st, ok := r.controller.Commit(v)
		if !ok {
			return result, fmt.Errorf("benchmark: run %d of %s: commit found no open window", i+1, v)
		}
		result.Runs++
		result.Constructed += constructed
		result.Durations = append(result.Durations, st.LastDuration)
	}
	return result, nil
}
