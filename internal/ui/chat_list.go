package ui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/keys"
	"github.com/saravenpi/parley/internal/logger"
	"github.com/saravenpi/parley/internal/models"
	"github.com/saravenpi/parley/internal/scroll"
)

// ChatLoader returns the chat list, most recent first.
type ChatLoader func() ([]models.ChatSummary, error)

type chatsLoadedMsg struct {
	kind  emptyKind
	chats []models.ChatSummary
	err   error
}

// openChatMsg asks the app to push the chat screen.
type openChatMsg struct {
	ref models.ChatRef
}

// ChatListModel is the chat list tab. The community tab reuses it with
// kind emptyGroups, which keeps only group chats.
type ChatListModel struct {
	env     *env
	kind    emptyKind
	load    ChatLoader
	tracker *scroll.Tracker

	chats   []models.ChatSummary
	list    list.Model
	loading bool
	err     error
	spinner spinner.Model
	width   int
	height  int
}

func NewChatListModel(e *env, kind emptyKind, load ChatLoader, tracker *scroll.Tracker) ChatListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = e.styles.Status

	l := list.New([]list.Item{}, chatDelegate{env: e}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return ChatListModel{
		env:     e,
		kind:    kind,
		load:    load,
		tracker: tracker,
		list:    l,
		loading: true,
		spinner: s,
		width:   80,
		height:  20,
	}
}

func (m ChatListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchChatsCmd())
}

func (m ChatListModel) fetchChatsCmd() tea.Cmd {
	kind, load := m.kind, m.load
	return func() tea.Msg {
		chats, err := load()
		if err != nil {
			return chatsLoadedMsg{kind: kind, err: err}
		}
		if kind == emptyGroups {
			chats = slices.DeleteFunc(slices.Clone(chats), func(c models.ChatSummary) bool { return !c.IsGroup })
		}
		return chatsLoadedMsg{kind: kind, chats: chats}
	}
}

// SetSize sizes the list to the space between header and tab bar.
func (m *ChatListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-2, 1))
}

// Filtering reports whether the filter prompt is capturing keys.
func (m ChatListModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m ChatListModel) Update(msg tea.Msg) (ChatListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chatsLoadedMsg:
		if msg.kind != m.kind {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			logger.Error("Failed to load chats: %v", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.setChats(msg.chats)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		if msg.String() == keys.Enter && !m.Filtering() && len(m.chats) > 0 {
			if item, ok := m.list.SelectedItem().(chatItem); ok {
				ref := models.ChatRef{ID: item.chat.ID, Name: item.chat.Name}
				return m, func() tea.Msg { return openChatMsg{ref: ref} }
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.observeScroll()
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// observeScroll reports the list position to the tracker as a line offset.
func (m *ChatListModel) observeScroll() {
	if m.tracker == nil {
		return
	}
	m.tracker.Observe(m.list.Index() * chatRowHeight)
}

func (m *ChatListModel) setChats(chats []models.ChatSummary) {
	m.chats = chats
	items := make([]list.Item, len(chats))
	for i, c := range chats {
		items[i] = chatItem{chat: c}
	}
	m.list.SetItems(items)
}

// MarkRead clears the unread dot on chatID.
func (m *ChatListModel) MarkRead(chatID string) {
	i := slices.IndexFunc(m.chats, func(c models.ChatSummary) bool { return c.ID == chatID })
	if i < 0 || !m.chats[i].Unread {
		return
	}
	chats := slices.Clone(m.chats)
	chats[i].Unread = false
	m.setChats(chats)
}

// ApplySent moves chatID to the top with msg as its preview.
func (m *ChatListModel) ApplySent(chatID string, msg models.Message) {
	i := slices.IndexFunc(m.chats, func(c models.ChatSummary) bool { return c.ID == chatID })
	if i < 0 {
		return
	}
	chat := m.chats[i]
	chat.LastMessage = msg.Content
	chat.Timestamp = msg.Timestamp
	chat.LastMessageIsMine = true
	chat.LastMessageRead = msg.Read
	chat.Unread = false

	chats := make([]models.ChatSummary, 0, len(m.chats))
	chats = append(chats, chat)
	chats = append(chats, m.chats[:i]...)
	chats = append(chats, m.chats[i+1:]...)
	m.setChats(chats)
	m.list.Select(0)
}

// Chats returns the rows currently shown.
func (m ChatListModel) Chats() []models.ChatSummary { return m.chats }

func (m ChatListModel) View() string {
	e := m.env
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spinner.View(), e.t("chat_list.loading"))
	}
	if m.err != nil {
		return e.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if len(m.chats) == 0 {
		return emptyView(e, m.kind, m.width, m.height)
	}

	s := m.list.View()
	if m.list.Paginator.OnLastPage() {
		s = lipgloss.JoinVertical(lipgloss.Left, s, footerView(e, m.width))
	}
	return s
}
