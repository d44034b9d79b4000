package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/theme"
)

// Styles are rebuilt whenever the theme changes.
type Styles struct {
	Palette theme.Palette

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
	Sub         lipgloss.Style
	Normal      lipgloss.Style
	Accent      lipgloss.Style

	ChatName         lipgloss.Style
	ChatNameSelected lipgloss.Style
	ChatRowSelected  lipgloss.Style
	Avatar           lipgloss.Style
	UnreadDot        lipgloss.Style
	Divider          lipgloss.Style

	BubbleMine  lipgloss.Style
	BubbleOther lipgloss.Style
	BubbleMeta  lipgloss.Style

	ChatBar lipgloss.Style

	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Drawer         lipgloss.Style
	DrawerItem     lipgloss.Style
	DrawerSelected lipgloss.Style
	DrawerSection  lipgloss.Style
}

// NewStyles derives every style from p.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Foreground(p.OnBackground).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.OnBackground),
		Help: lipgloss.NewStyle().
			Foreground(p.Sub).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(p.Primary),
		Sub: lipgloss.NewStyle().
			Foreground(p.Sub),
		Normal: lipgloss.NewStyle().
			Foreground(p.OnBackground),
		Accent: lipgloss.NewStyle().
			Foreground(p.Primary),

		ChatName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.OnBackground),
		ChatNameSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		ChatRowSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Primary).
			PaddingLeft(1),
		Avatar: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.OnPrimary).
			Background(p.Primary).
			Padding(0, 1),
		UnreadDot: lipgloss.NewStyle().
			Foreground(p.Unread),
		Divider: lipgloss.NewStyle().
			Foreground(p.Line),

		BubbleMine: lipgloss.NewStyle().
			Foreground(p.OnPrimary).
			Background(p.Primary).
			Padding(0, 1).
			MarginLeft(5),
		BubbleOther: lipgloss.NewStyle().
			Foreground(p.OnSecondary).
			Background(p.Secondary).
			Padding(0, 1).
			MarginRight(5),
		BubbleMeta: lipgloss.NewStyle().
			Foreground(p.Sub),

		ChatBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		TabBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.Line),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.OnBackground),

		Drawer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Line).
			Padding(1, 2),
		DrawerItem: lipgloss.NewStyle().
			Foreground(p.OnPrimaryContainer).
			PaddingLeft(2),
		DrawerSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Primary).
			PaddingLeft(1),
		DrawerSection: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.Primary).
			MarginTop(1),
	}
}
