package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/i18n"
	"github.com/saravenpi/parley/internal/keys"
	"github.com/saravenpi/parley/internal/logger"
	"github.com/saravenpi/parley/internal/theme"
)

// navigateMsg asks the app to show route.
type navigateMsg struct {
	route Route
}

// setLanguageMsg and setThemeMsg ask the app to apply and save a preference.
type setLanguageMsg struct {
	lang i18n.Language
}

type setThemeMsg struct {
	pref theme.Preference
}

type closeDrawerMsg struct{}

// drawerAction is a header button. Activating one only logs it.
type drawerAction int

const (
	actionCamera drawerAction = iota
	actionSearch
	actionSettings
)

var drawerActions = []drawerAction{actionCamera, actionSearch, actionSettings}

var actionKeys = map[drawerAction]string{
	actionCamera:   "camera",
	actionSearch:   "search",
	actionSettings: "settings",
}

var actionIcons = map[drawerAction]string{
	actionCamera:   "◎",
	actionSearch:   "⌕",
	actionSettings: "⚙",
}

type drawerEntryKind int

const (
	entryRoute drawerEntryKind = iota
	entryLanguage
	entryTheme
	entryAction
)

type drawerEntry struct {
	kind   drawerEntryKind
	route  Route
	action drawerAction
}

// DrawerModel is the side menu: routes, the language and theme switchers,
// and the header actions.
type DrawerModel struct {
	env     *env
	entries []drawerEntry
	cursor  int
	theme   theme.Preference
	status  string
	height  int
}

func NewDrawerModel(e *env, pref theme.Preference) DrawerModel {
	var entries []drawerEntry
	for _, r := range drawerRoutes {
		entries = append(entries, drawerEntry{kind: entryRoute, route: r})
	}
	entries = append(entries, drawerEntry{kind: entryLanguage}, drawerEntry{kind: entryTheme})
	for _, a := range drawerActions {
		entries = append(entries, drawerEntry{kind: entryAction, action: a})
	}
	return DrawerModel{env: e, entries: entries, theme: pref, height: 20}
}

// SetTheme records the preference shown next to the theme switcher.
func (m *DrawerModel) SetTheme(p theme.Preference) { m.theme = p }

func (m *DrawerModel) SetHeight(h int) { m.height = h }

// Selected returns the entry under the cursor.
func (m DrawerModel) Selected() drawerEntry { return m.entries[m.cursor] }

func (m DrawerModel) Update(msg tea.Msg) (DrawerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case keys.Up, "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case keys.Down, "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case keys.Escape, "m":
		return m, func() tea.Msg { return closeDrawerMsg{} }
	case "l":
		return m, m.cycleLanguage()
	case "t":
		return m, m.cycleTheme()
	case keys.Enter:
		return m.activate()
	}
	return m, nil
}

func (m DrawerModel) activate() (DrawerModel, tea.Cmd) {
	entry := m.Selected()
	switch entry.kind {
	case entryRoute:
		route := entry.route
		return m, func() tea.Msg { return navigateMsg{route: route} }
	case entryLanguage:
		return m, m.cycleLanguage()
	case entryTheme:
		return m, m.cycleTheme()
	case entryAction:
		name := actionKeys[entry.action]
		logger.Info("Header action %q activated", name)
		m.status = m.env.t("drawer." + name)
	}
	return m, nil
}

func (m DrawerModel) cycleLanguage() tea.Cmd {
	next := m.env.tr.Language().Next()
	return func() tea.Msg { return setLanguageMsg{lang: next} }
}

func (m DrawerModel) cycleTheme() tea.Cmd {
	next := m.theme.Next()
	return func() tea.Msg { return setThemeMsg{pref: next} }
}

func (m DrawerModel) entryLabel(entry drawerEntry) string {
	e := m.env
	switch entry.kind {
	case entryRoute:
		return entry.route.Icon(false) + "  " + e.t(entry.route.LabelKey())
	case entryLanguage:
		return fmt.Sprintf("🌐  %s: %s", e.t("drawer.language"), strings.ToUpper(string(e.tr.Language())))
	case entryTheme:
		return fmt.Sprintf("◐  %s: %s", e.t("drawer.theme"), e.t("theme."+string(m.theme)))
	default:
		return actionIcons[entry.action] + "  " + e.t("drawer."+actionKeys[entry.action])
	}
}

func (m DrawerModel) View() string {
	s := m.env.styles

	var rows []string
	for i, entry := range m.entries {
		// Switchers and actions each open their own section.
		if i > 0 && entry.kind != m.entries[i-1].kind && entry.kind != entryTheme {
			rows = append(rows, s.DrawerSection.Width(24).Render(""))
		}
		label := m.entryLabel(entry)
		if i == m.cursor {
			rows = append(rows, s.DrawerSelected.Render(label))
		} else {
			rows = append(rows, s.DrawerItem.Render(label))
		}
	}
	if m.status != "" {
		rows = append(rows, "", s.Status.Render(m.status))
	}
	rows = append(rows, "", s.Help.Render(m.env.t("help.drawer")))

	return s.Drawer.Height(max(m.height-2, 1)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
