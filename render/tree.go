package render

import (
	"fmt"
	"time"

	"github.com/aymericzip/benchmark-intl/benchmark"
	"github.com/aymericzip/benchmark-intl/workload"
)

// Key is the identity of one mounted label instance, scoped to its batch
// the way list keys are scoped to their parent. Generation is part of the
// identity on purpose: a trigger changes it, which makes every key new and
// forces full reconstruction of the subtree.
type Key struct {
	Batch      int
	Locale     string
	Item       int
	Generation int
}

// label is one mounted instance. Its text is produced at construction time
// and reused verbatim for as long as its key stays mounted.
type label struct {
	key  Key
	text string
}

// Section mirrors one dataset batch in the rendered output.
type Section struct {
	Labels []string
}

// Tree owns the mounted label instances of one variant's subtree.
//
// Render must be called from the render loop thread; the tree holds no
// locks. The display locale may only change together with the generation,
// which the benchmark controller guarantees, so a reused instance never
// serves output formatted for a stale display locale.
type Tree struct {
	strategy benchmark.FormatterStrategy
	opts     benchmark.FormatOptions
	today    func() time.Time

	mounted map[Key]*label

	lastConstructed int
	lastReused      int
}

// NewTree creates an empty tree for one strategy.
func NewTree(strategy benchmark.FormatterStrategy, opts benchmark.FormatOptions) *Tree {
	return &Tree{
		strategy: strategy,
		opts:     opts,
		today:    time.Now,
		mounted:  make(map[Key]*label),
	}
}

// SetToday replaces the wall-clock date source. Test hook.
func (t *Tree) SetToday(today func() time.Time) {
	t.today = today
}

// Render walks the dataset and produces one Section per batch for the given
// display locale and generation. Instances whose key is already mounted are
// reused; every other key constructs a fresh instance, which asks the
// strategy for a formatter and formats the item's derived date. Keys absent
// from this pass are unmounted.
//
// A formatter construction failure aborts the pass: the error propagates
// and the previously mounted instances stay in place untouched.
func (t *Tree) Render(dataset workload.Dataset, displayLocale string, generation int) ([]Section, error) {
	next := make(map[Key]*label, len(t.mounted))
	sections := make([]Section, len(dataset))
	constructed, reused := 0, 0

	today := t.today()
	for b, batch := range dataset {
		sections[b].Labels = make([]string, len(batch))
		for i, loc := range batch {
			k := Key{Batch: b, Locale: loc, Item: i, Generation: generation}
			if inst, ok := t.mounted[k]; ok {
				next[k] = inst
				sections[b].Labels[i] = inst.text
				reused++
				continue
			}
			f, err := t.strategy.Formatter(displayLocale, t.opts)
			if err != nil {
				return nil, fmt.Errorf("render: construct formatter for %q: %w", displayLocale, err)
			}
			inst := &label{
				key:  k,
				text: fmt.Sprintf("%-7s %s", loc, f.Format(DateFor(loc, generation, today))),
			}
			next[k] = inst
			sections[b].Labels[i] = inst.text
			constructed++
		}
	}

	t.mounted = next
	t.lastConstructed = constructed
	t.lastReused = reused
	return sections, nil
}

// LastPass reports how many instances the most recent successful pass
// constructed and how many it reused.
func (t *Tree) LastPass() (constructed, reused int) {
	return t.lastConstructed, t.lastReused
}

// Mounted returns the number of currently mounted instances.
func (t *Tree) Mounted() int {
	return len(t.mounted)
}
