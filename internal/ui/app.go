package ui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/chat"
	"github.com/saravenpi/parley/internal/config"
	"github.com/saravenpi/parley/internal/fixtures"
	"github.com/saravenpi/parley/internal/i18n"
	"github.com/saravenpi/parley/internal/keys"
	"github.com/saravenpi/parley/internal/logger"
	"github.com/saravenpi/parley/internal/models"
	"github.com/saravenpi/parley/internal/scroll"
	"github.com/saravenpi/parley/internal/theme"
)

// Store is what the UI persists through: sent messages and preferences.
type Store interface {
	chat.Store
	config.PreferenceStore
}

// Options configure NewApp. Store may be nil to run without persistence.
type Options struct {
	Store      Store
	Seed       *fixtures.Seed
	Translator *i18n.Translator
	Theme      theme.Preference
	PageSize   int
	Now        func() time.Time
	// DetectDark reports whether the terminal background is dark.
	DetectDark func() bool
}

type chatLoadedMsg struct {
	ref     models.ChatRef
	history []models.Message
	err     error
}

type prefSavedMsg struct {
	what string
	err  error
}

const headerHeight = 1

// AppModel is the root model: header, the active screen, and the tab bar,
// with the drawer and chat screens layered on top.
type AppModel struct {
	env     *env
	opts    Options
	tracker *scroll.Tracker

	route      Route
	tabs       TabBarModel
	chats      ChatListModel
	community  ChatListModel
	drawer     DrawerModel
	drawerOpen bool
	stack      []ChatScreenModel

	themePref theme.Preference
	status    string
	statusErr error
	width     int
	height    int
}

func NewApp(opts Options) AppModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DetectDark == nil {
		opts.DetectDark = lipgloss.HasDarkBackground
	}
	if opts.PageSize <= 0 {
		opts.PageSize = chat.PageSize
	}
	if opts.Translator == nil {
		opts.Translator = i18n.MustNew(i18n.DefaultLanguage)
	}

	palette := theme.For(theme.Resolve(opts.Theme, opts.DetectDark()))
	e := newEnv(opts.Translator, palette, opts.Now)

	tracker := scroll.NewTracker()
	tracker.OnChange(func(d scroll.Direction) {
		logger.Debug("Scroll direction changed to %s", d)
	})

	load := chatLoader(opts)
	return AppModel{
		env:       e,
		opts:      opts,
		tracker:   tracker,
		route:     RouteHome,
		tabs:      NewTabBarModel(e, tracker),
		chats:     NewChatListModel(e, emptyChats, load, tracker),
		community: NewChatListModel(e, emptyGroups, load, tracker),
		drawer:    NewDrawerModel(e, opts.Theme),
		themePref: opts.Theme,
		width:     80,
		height:    24,
	}
}

// chatLoader lists the seeded chats with previews updated from messages the
// user sent in earlier sessions. Chats with a sent message come first, the
// same way sent messages lead their history on open.
func chatLoader(opts Options) ChatLoader {
	return func() ([]models.ChatSummary, error) {
		if opts.Seed == nil {
			return nil, nil
		}
		chats := opts.Seed.Chats(opts.Now())
		slices.SortStableFunc(chats, func(a, b models.ChatSummary) int {
			return b.Timestamp.Compare(a.Timestamp)
		})
		if opts.Store == nil {
			return chats, nil
		}

		ctx := context.Background()
		var withSent, rest []models.ChatSummary
		for _, c := range chats {
			sent, err := chat.LoadSent(ctx, opts.Store, c.ID)
			if err != nil {
				logger.Warn("Could not read sent messages for chat %s: %v", c.ID, err)
			}
			if len(sent) == 0 {
				rest = append(rest, c)
				continue
			}
			c.LastMessage = sent[0].Content
			c.Timestamp = sent[0].Timestamp
			c.LastMessageIsMine = true
			c.LastMessageRead = sent[0].Read
			withSent = append(withSent, c)
		}
		slices.SortStableFunc(withSent, func(a, b models.ChatSummary) int {
			return b.Timestamp.Compare(a.Timestamp)
		})
		return append(withSent, rest...), nil
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.chats.Init(), m.community.Init())
}

// Route is the screen shown under the header: RouteHome for the tabs.
func (m AppModel) Route() Route { return m.route }

// ActiveTab is the focused bottom tab.
func (m AppModel) ActiveTab() Route { return m.tabs.Active() }

// ChatOpen reports whether a conversation is on screen.
func (m AppModel) ChatOpen() bool { return len(m.stack) > 0 }

func (m AppModel) headerRoute() Route {
	if m.route == RouteHome {
		return m.tabs.Active()
	}
	return m.route
}

func (m *AppModel) layout() {
	m.tabs.SetWidth(m.width)
	bodyHeight := max(m.height-headerHeight-1-m.tabs.Height(), 1)
	m.chats.SetSize(m.width, bodyHeight)
	m.community.SetSize(m.width, bodyHeight)
	m.drawer.SetHeight(m.height - headerHeight)
	for i := range m.stack {
		m.stack[i].SetSize(m.width, m.height-headerHeight)
	}
}

func (m *AppModel) setStatus(text string, err error) {
	m.status = text
	m.statusErr = err
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case chatsLoadedMsg, spinner.TickMsg:
		var c1, c2 tea.Cmd
		m.chats, c1 = m.chats.Update(msg)
		m.community, c2 = m.community.Update(msg)
		return m, tea.Batch(c1, c2)

	case tabFrameMsg:
		var cmd tea.Cmd
		m.tabs, cmd = m.tabs.Update(msg)
		m.layout()
		return m, cmd

	case openChatMsg:
		m.chats.MarkRead(msg.ref.ID)
		m.community.MarkRead(msg.ref.ID)
		return m, m.loadChatCmd(msg.ref)

	case chatLoadedMsg:
		if len(m.stack) > 0 && m.stack[len(m.stack)-1].Ref().ID == msg.ref.ID {
			return m, nil
		}
		screen := NewChatScreenModel(m.env, msg.ref, msg.history, m.opts.Store,
			chat.WithPageSize(m.opts.PageSize), chat.WithClock(m.opts.Now))
		if msg.err != nil {
			screen.status = m.env.t("chat_screen.history_failed")
			screen.err = msg.err
		}
		screen.SetSize(m.width, m.height-headerHeight)
		m.stack = append(m.stack, screen)
		logger.Info("Opened chat %s (%d messages)", msg.ref.ID, len(msg.history))
		return m, screen.Init()

	case closeChatMsg:
		if len(m.stack) > 0 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil

	case messageSentMsg:
		m.chats.ApplySent(msg.chatID, msg.msg)
		m.community.ApplySent(msg.chatID, msg.msg)
		return m.updateTop(msg)

	case copiedMsg:
		return m.updateTop(msg)

	case navigateMsg:
		m.drawerOpen = false
		m.route = msg.route
		return m, nil

	case closeDrawerMsg:
		m.drawerOpen = false
		return m, nil

	case setLanguageMsg:
		m.env.tr.SetLanguage(msg.lang)
		m.restyle()
		logger.Info("Language set to %s", msg.lang)
		return m, m.savePrefCmd("language", func(ctx context.Context, s Store) error {
			return config.SaveLanguage(ctx, s, msg.lang)
		})

	case setThemeMsg:
		m.themePref = msg.pref
		m.drawer.SetTheme(msg.pref)
		m.env.setPalette(theme.For(theme.Resolve(msg.pref, m.opts.DetectDark())))
		m.restyle()
		logger.Info("Theme set to %s", msg.pref)
		return m, m.savePrefCmd("theme", func(ctx context.Context, s Store) error {
			return config.SaveTheme(ctx, s, msg.pref)
		})

	case prefSavedMsg:
		if msg.err != nil {
			logger.Error("Failed to save %s: %v", msg.what, msg.err)
			m.setStatus(m.env.t("drawer.save_failed"), msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == keys.CtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if len(m.stack) > 0 {
		return m.updateTop(msg)
	}
	if active := m.activeList(); active != nil {
		var cmd tea.Cmd
		*active, cmd = active.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.stack) > 0 {
		return m.updateTop(msg)
	}
	if m.drawerOpen {
		var cmd tea.Cmd
		m.drawer, cmd = m.drawer.Update(msg)
		return m, cmd
	}

	active := m.activeList()
	filtering := active != nil && active.Filtering()
	if !filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "m":
			m.drawerOpen = true
			return m, nil
		case keys.Escape:
			if m.route != RouteHome {
				m.route = RouteHome
				return m, nil
			}
		case keys.Tab, keys.ShiftTab:
			if m.route != RouteHome {
				m.route = RouteHome
			}
			delta := 1
			if msg.String() == keys.ShiftTab {
				delta = -1
			}
			m.tabs.Next(delta)
			m.tracker.Reset()
			m.setStatus("", nil)
			return m, m.tabs.Sync()
		}
	}

	if active == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*active, cmd = active.Update(msg)
	if sync := m.tabs.Sync(); sync != nil {
		return m, tea.Batch(cmd, sync)
	}
	return m, cmd
}

// activeList is the list under the tab bar, or nil for placeholder screens.
func (m *AppModel) activeList() *ChatListModel {
	if m.route != RouteHome {
		return nil
	}
	switch m.tabs.Active() {
	case RouteChats:
		return &m.chats
	case RouteCommunity:
		return &m.community
	}
	return nil
}

func (m AppModel) updateTop(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.stack) == 0 {
		return m, nil
	}
	top := len(m.stack) - 1
	var cmd tea.Cmd
	m.stack[top], cmd = m.stack[top].Update(msg)
	return m, cmd
}

func (m *AppModel) restyle() {
	for i := range m.stack {
		m.stack[i].Restyle()
	}
	m.setStatus("", nil)
}

func (m AppModel) loadChatCmd(ref models.ChatRef) tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		var history []models.Message
		if opts.Seed != nil {
			history = opts.Seed.History(ref.ID, opts.Now())
		}
		if opts.Store == nil {
			return chatLoadedMsg{ref: ref, history: history}
		}
		sent, err := chat.LoadSent(context.Background(), opts.Store, ref.ID)
		if err != nil {
			logger.Warn("Could not read sent messages for chat %s: %v", ref.ID, err)
			return chatLoadedMsg{ref: ref, history: history, err: err}
		}
		return chatLoadedMsg{ref: ref, history: chat.MergeHistory(sent, history)}
	}
}

func (m AppModel) savePrefCmd(what string, save func(context.Context, Store) error) tea.Cmd {
	store := m.opts.Store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return prefSavedMsg{what: what, err: save(context.Background(), store)}
	}
}

func (m AppModel) headerView() string {
	s := m.env.styles
	title := ""
	if len(m.stack) > 0 {
		title = "‹ " + m.stack[len(m.stack)-1].Ref().Name
	} else if key := m.headerRoute().HeaderKey(); key != "" {
		title = m.env.t(key)
	}
	left := s.HeaderTitle.Render(title)
	right := s.Sub.Render("≡ m")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return s.Header.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

func (m AppModel) bodyView(height int) string {
	if m.route == RouteProfile {
		return placeholderView(m.env, "placeholder.profile", m.width, height)
	}
	switch m.tabs.Active() {
	case RouteChats:
		return m.chats.View()
	case RouteCommunity:
		return m.community.View()
	case RouteStories:
		return placeholderView(m.env, "placeholder.stories", m.width, height)
	default:
		return placeholderView(m.env, "placeholder.calls", m.width, height)
	}
}

func (m AppModel) statusView() string {
	s := m.env.styles
	switch {
	case m.statusErr != nil:
		return s.Error.Render(fmt.Sprintf("%s: %v", m.status, m.statusErr))
	case m.status != "":
		return s.Status.Render(m.status)
	default:
		return s.Help.Render(m.env.t("help.list"))
	}
}

func (m AppModel) View() string {
	header := m.headerView()
	if len(m.stack) > 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.stack[len(m.stack)-1].View())
	}
	if m.drawerOpen {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.drawer.View())
	}

	bodyHeight := max(m.height-headerHeight-1-m.tabs.Height(), 1)
	body := lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(m.bodyView(bodyHeight))
	parts := []string{header, body, m.statusView()}
	if tabs := m.tabs.View(); tabs != "" {
		parts = append(parts, tabs)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
