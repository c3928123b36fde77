// Package tui hosts the interactive harness: two side-by-side panels, one
// per formatter strategy, each showing its latest render-to-paint duration,
// a run counter, and a manual trigger key.
//
// The model is designed for single-threaded use inside the bubbletea event
// loop. A trigger mutates controller state and rebuilds the variant's label
// subtree synchronously in Update; the post-commit hook is a zero-delay
// command whose message closes the measurement window on the next loop
// turn, after the rebuilt subtree has been handed to the renderer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aymericzip/benchmark-intl/benchmark"
	"github.com/aymericzip/benchmark-intl/render"
	"github.com/aymericzip/benchmark-intl/workload"
)

// commitMsg signals that the subtree rebuilt by a trigger has been handed
// to the renderer. Arriving with no open window it is ignored.
type commitMsg struct {
	variant benchmark.Variant
}

// keyMap defines the harness key bindings.
type keyMap struct {
	Uncached key.Binding
	Cached   key.Binding
	Both     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Uncached: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "trigger uncached"),
		),
		Cached: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "trigger cached"),
		),
		Both: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "trigger both"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Uncached, k.Cached, k.Both, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Uncached, k.Cached, k.Both}, {k.Help, k.Quit}}
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	durationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model for the benchmark harness.
type Model struct {
	controller *benchmark.Controller
	dataset    workload.Dataset
	trees      [2]*render.Tree
	names      [2]string
	sections   [2][]render.Section

	keys     keyMap
	help     help.Model
	width    int
	height   int
	err      error
	quitting bool
}

// NewModel assembles the harness model. The trees must be bound to the same
// strategies the names describe, indexed by benchmark.Variant.
func NewModel(controller *benchmark.Controller, dataset workload.Dataset, trees [2]*render.Tree, names [2]string) Model {
	return Model{
		controller: controller,
		dataset:    dataset,
		trees:      trees,
		names:      names,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Uncached):
			return m.trigger(benchmark.Uncached)

		case key.Matches(msg, m.keys.Cached):
			return m.trigger(benchmark.Cached)

		case key.Matches(msg, m.keys.Both):
			var cmds []tea.Cmd
			next, cmd := m.trigger(benchmark.Uncached)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			next, cmd = next.(Model).trigger(benchmark.Cached)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return next, tea.Batch(cmds...)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case commitMsg:
		m.controller.Commit(msg.variant)
	}

	return m, nil
}

// trigger runs one benchmark cycle for the variant: controller trigger,
// synchronous subtree rebuild, then the zero-delay commit command. On a
// formatter construction failure the pass aborts: the panel keeps its
// previous duration and the error is surfaced instead.
func (m Model) trigger(v benchmark.Variant) (tea.Model, tea.Cmd) {
	st := m.controller.Trigger(v)
	sections, err := m.trees[v].Render(m.dataset, st.DisplayLocale, st.Generation)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.sections[v] = sections
	return m, func() tea.Msg { return commitMsg{variant: v} }
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPanel(benchmark.Uncached),
		m.renderPanel(benchmark.Cached),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("benchmark-intl — formatter construction cost"))
	b.WriteString("\n\n")
	b.WriteString(panels)
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render("render aborted: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderPanel(v benchmark.Variant) string {
	st := m.controller.State(v)
	constructed, reused := m.trees[v].LastPass()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.names[v]))
	b.WriteString("\n\n")
	b.WriteString(durationStyle.Render(fmt.Sprintf("%.1f ms", millis(st))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("runs: %d   locale: %s\n", st.Generation, st.DisplayLocale))
	b.WriteString(faintStyle.Render(fmt.Sprintf("labels: %d built / %d reused", constructed, reused)))
	b.WriteString("\n")

	for _, line := range m.previewLines(v) {
		b.WriteString(faintStyle.Render(line))
		b.WriteString("\n")
	}

	width := m.width/2 - 4
	if width < 20 {
		width = 40
	}
	return panelStyle.Width(width).Render(b.String())
}

// previewLines returns the head of the variant's most recent render, sized
// to the terminal. The full dataset is thousands of labels; the panel only
// ever shows a window onto it.
func (m Model) previewLines(v benchmark.Variant) []string {
	limit := m.height - 12
	if limit < 3 {
		limit = 3
	}
	var lines []string
	for _, section := range m.sections[v] {
		for _, label := range section.Labels {
			if len(lines) >= limit {
				return lines
			}
			lines = append(lines, label)
		}
	}
	return lines
}

func millis(st benchmark.VariantState) float64 {
	return float64(st.LastDuration.Microseconds()) / 1000.0
}
