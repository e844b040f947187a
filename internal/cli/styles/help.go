package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ExplorerKeyMap defines keybindings for the scene explorer.
type ExplorerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextProp key.Binding
	PrevProp key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ExplorerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextProp, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k ExplorerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextProp, k.PrevProp},
		{k.Help, k.Quit},
	}
}

// DefaultExplorerKeyMap returns the default explorer keybindings.
func DefaultExplorerKeyMap() ExplorerKeyMap {
	return ExplorerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextProp: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next property"),
		),
		PrevProp: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("S-tab", "prev property"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
