// Package model provides Bubble Tea models for attachctl commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/attachprop/internal/cli/styles"
	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/internal/scene"
)

// ThemeChangedMsg replaces the explorer's theme, for example after the
// config file changed.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

// ExplorerModel is the Bubble Tea model for the interactive scene explorer.
// It lists scene nodes on the left and the resolution chain of the selected
// property on the right.
type ExplorerModel struct {
	// UI components
	help help.Model
	keys styles.ExplorerKeyMap

	// State
	nodes      []scene.NodeInfo
	properties []string
	selected   int
	property   int
	showHelp   bool
	width      int
	height     int

	// Dependencies
	ctx   context.Context
	scene *scene.Scene
	theme *styles.Theme
}

// NewExplorerModel creates a new scene explorer model.
func NewExplorerModel(ctx context.Context, theme *styles.Theme, s *scene.Scene) ExplorerModel {
	log := logging.FromContext(ctx)
	log.Debug().Int("nodes", len(s.Names())).Msg("creating explorer model")

	return ExplorerModel{
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultExplorerKeyMap(),
		nodes:      s.Nodes(),
		properties: s.PropertyNames(),
		ctx:        ctx,
		scene:      s,
		theme:      theme,
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			h := styles.NewStyledHelp(msg.Theme)
			h.Width = m.help.Width
			h.ShowAll = m.help.ShowAll
			m.help = h
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m ExplorerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.nodes)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.NextProp):
		if len(m.properties) > 0 {
			m.property = (m.property + 1) % len(m.properties)
		}
	case key.Matches(msg, m.keys.PrevProp):
		if len(m.properties) > 0 {
			m.property = (m.property + len(m.properties) - 1) % len(m.properties)
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

// Selected returns the name of the selected node.
func (m ExplorerModel) Selected() string {
	if len(m.nodes) == 0 {
		return ""
	}
	return m.nodes[m.selected].Name
}

// Property returns the property whose chain is shown.
func (m ExplorerModel) Property() string {
	if len(m.properties) == 0 {
		return ""
	}
	return m.properties[m.property]
}

// View implements tea.Model.
func (m ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.BoxHeader.Render("attachctl explore"))
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Box.Render(m.renderNodes()),
		m.theme.Box.Render(m.renderChain()),
	)
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m ExplorerModel) renderNodes() string {
	lines := make([]string, 0, len(m.nodes))
	for i, info := range m.nodes {
		label := strings.Repeat("  ", info.Level) + info.Name
		if i == m.selected {
			lines = append(lines, m.theme.ListItemSelected.Render(label))
			continue
		}
		lines = append(lines, m.theme.ListItem.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (m ExplorerModel) renderChain() string {
	prop := m.Property()
	if prop == "" {
		return m.theme.Subtle.Render("no properties in scene")
	}

	tr, err := m.scene.Trace(m.Selected(), prop)
	if err != nil {
		return m.theme.ErrorStyle.Render(err.Error())
	}

	header := m.theme.Title.Render(prop) + " " +
		m.theme.KindBadge(m.nodes[m.selected].Kind.String(), m.nodes[m.selected].Kind.IsVisual())

	var summary string
	if tr.Resolution.Found {
		summary = m.theme.SuccessStyle.Render(fmt.Sprintf("%s from %s",
			styles.FormatValue(tr.Resolution.Value), tr.SourceName()))
	} else {
		summary = m.theme.WarningStyle.Render("not set on the chain")
	}

	t := styles.NewStyledTable(m.theme, chainColumns(), styles.TraceRows(tr), 60, len(tr.Steps)+1)
	t.Blur()

	return lipgloss.JoinVertical(lipgloss.Left, header, summary, t.View())
}

func chainColumns() []table.Column {
	cols := styles.TraceColumns()
	cols[len(cols)-1].Width = 20
	return cols
}
