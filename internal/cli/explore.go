package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mvoggen/grove/pkg/forest"
)

// Explorer styles.
var (
	exploreCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreNodeStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	exploreLeafStyle   = lipgloss.NewStyle().Foreground(colorGray)
	exploreCountStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command, an interactive terminal
// browser for a parsed forest.
func (c *CLI) exploreCommand() *cobra.Command {
	var sortFirst bool

	cmd := &cobra.Command{
		Use:   "explore <notation|file>",
		Short: "Browse a forest interactively",
		Long: `Open an interactive terminal browser for a parsed forest.

Nodes can be expanded and collapsed; navigation uses arrow or vim keys.

Examples:
  grove explore "a, b(c, d(e)), f"
  grove explore fields.grove --sort`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			items := forest.Parse(input)
			if sortFirst {
				if err := c.sortForest(items, ""); err != nil {
					return err
				}
			}
			if len(items) == 0 {
				printWarning("Nothing to explore: empty forest")
				return nil
			}

			_, err = tea.NewProgram(NewExploreModel(items)).Run()
			return err
		},
	}

	cmd.Flags().BoolVarP(&sortFirst, "sort", "s", false, "sort alphabetically before exploring")

	return cmd
}

// exploreEntry is one visible row: an item at its nesting depth.
type exploreEntry struct {
	item  *forest.Item
	depth int
}

// ExploreModel is the bubbletea model for the forest explorer.
type ExploreModel struct {
	items    []*forest.Item
	expanded map[*forest.Item]bool
	visible  []exploreEntry
	cursor   int
	height   int
	offset   int
}

// NewExploreModel creates an explorer over the given forest with all
// nodes expanded.
func NewExploreModel(items []*forest.Item) ExploreModel {
	m := ExploreModel{
		items:    items,
		expanded: make(map[*forest.Item]bool),
		height:   15,
	}
	m.setAllExpanded(true)
	m.rebuild()
	return m
}

func (m *ExploreModel) setAllExpanded(expanded bool) {
	var walk func(items []*forest.Item)
	walk = func(items []*forest.Item) {
		for _, it := range items {
			if !it.IsLeaf() {
				m.expanded[it] = expanded
				walk(it.Children)
			}
		}
	}
	walk(m.items)
}

// rebuild recomputes the visible rows from the expansion state.
func (m *ExploreModel) rebuild() {
	m.visible = m.visible[:0]
	var walk func(items []*forest.Item, depth int)
	walk = func(items []*forest.Item, depth int) {
		for _, it := range items {
			m.visible = append(m.visible, exploreEntry{item: it, depth: depth})
			if m.expanded[it] {
				walk(it.Children, depth+1)
			}
		}
	}
	walk(m.items, 0)

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			it := m.visible[m.cursor].item
			if !it.IsLeaf() {
				m.expanded[it] = !m.expanded[it]
				m.rebuild()
			}
		case "e":
			m.setAllExpanded(true)
			m.rebuild()
		case "c":
			m.setAllExpanded(false)
			m.rebuild()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Forest Explorer"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ toggle  e expand all  c collapse all  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := m.offset; i < end; i++ {
		entry := m.visible[i]

		cursor := "  "
		if i == m.cursor {
			cursor = exploreCursorStyle.Render("▸ ")
		}

		b.WriteString(cursor)
		b.WriteString(strings.Repeat("  ", entry.depth))
		b.WriteString(m.renderEntry(entry.item))
		b.WriteString("\n")
	}

	return b.String()
}

// renderEntry formats one row: leaves plain, nodes bold with a marker
// reflecting their expansion state and a child count.
func (m ExploreModel) renderEntry(it *forest.Item) string {
	if it.IsLeaf() {
		return exploreLeafStyle.Render(it.Name)
	}

	marker := "▸"
	if m.expanded[it] {
		marker = "▾"
	}
	count := exploreCountStyle.Render(fmt.Sprintf(" (%d)", len(it.Children)))
	return marker + " " + exploreNodeStyle.Render(it.Name) + count
}
