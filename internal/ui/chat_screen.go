package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/chat"
	"github.com/saravenpi/parley/internal/keys"
	"github.com/saravenpi/parley/internal/logger"
	"github.com/saravenpi/parley/internal/models"
)

// messageSentMsg reports a sent message after it was persisted.
type messageSentMsg struct {
	chatID string
	msg    models.Message
	err    error
}

type copiedMsg struct {
	err error
}

// closeChatMsg asks the app to pop the chat screen.
type closeChatMsg struct{}

// chatBarHeight is the composer box including its border.
const chatBarHeight = 3

// ChatScreenModel shows one conversation with a composer underneath.
type ChatScreenModel struct {
	env     *env
	ref     models.ChatRef
	session *chat.Session
	store   chat.Store

	viewport  viewport.Model
	input     textinput.Model
	lineCount int
	status    string
	err       error
	width     int
	height    int
}

// NewChatScreenModel opens ref with history (newest-first). store may be nil,
// in which case sent messages are not persisted.
func NewChatScreenModel(e *env, ref models.ChatRef, history []models.Message, store chat.Store, opts ...chat.Option) ChatScreenModel {
	vp := viewport.New(80, 20)

	ti := textinput.New()
	ti.Placeholder = e.t("chat_screen.placeholder")
	ti.CharLimit = 1000
	ti.Prompt = "› "
	ti.Focus()

	m := ChatScreenModel{
		env:      e,
		ref:      ref,
		session:  chat.NewSession(history, opts...),
		store:    store,
		viewport: vp,
		input:    ti,
		width:    80,
		height:   24,
	}
	m.refreshContent()
	m.viewport.GotoBottom()
	return m
}

func (m ChatScreenModel) Init() tea.Cmd {
	return textinput.Blink
}

// Ref identifies the open chat.
func (m ChatScreenModel) Ref() models.ChatRef { return m.ref }

// Session exposes the underlying pagination state.
func (m ChatScreenModel) Session() *chat.Session { return m.session }

// SetSize lays out viewport and composer in width x height.
func (m *ChatScreenModel) SetSize(width, height int) {
	atBottom := m.viewport.AtBottom()
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-chatBarHeight-1, 1)
	m.input.Width = max(width-6, 10)
	m.refreshContent()
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// Restyle re-renders after a theme or language change.
func (m *ChatScreenModel) Restyle() {
	m.input.Placeholder = m.env.t("chat_screen.placeholder")
	m.refreshContent()
}

func (m *ChatScreenModel) refreshContent() {
	content := renderConversation(m.env, m.session.Window(), m.session.HasMore(), m.viewport.Width)
	m.lineCount = lipgloss.Height(content)
	m.viewport.SetContent(content)
}

func (m ChatScreenModel) Update(msg tea.Msg) (ChatScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case messageSentMsg:
		if msg.chatID != m.ref.ID {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.status = m.env.t("chat_screen.save_failed")
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			logger.Warn("Clipboard write failed: %v", msg.err)
			m.status = m.env.t("chat_screen.copy_failed")
		} else {
			m.status = m.env.t("chat_screen.copied")
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.maybeLoadMore()
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case keys.Escape:
			return m, func() tea.Msg { return closeChatMsg{} }

		case keys.Enter:
			return m.send()

		case keys.CtrlY:
			return m, m.copyLastCmd()

		case keys.Up:
			m.scrollBy(-1)
			return m, nil
		case keys.Down:
			m.scrollBy(1)
			return m, nil
		case keys.PgUp:
			m.scrollBy(-max(m.viewport.Height/2, 1))
			return m, nil
		case keys.PgDown:
			m.scrollBy(max(m.viewport.Height/2, 1))
			return m, nil
		case keys.Home:
			m.viewport.GotoTop()
			m.maybeLoadMore()
			return m, nil
		case keys.End:
			m.viewport.GotoBottom()
			return m, nil
		}

		m.status = ""
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetDraft(m.input.Value())
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatScreenModel) scrollBy(lines int) {
	m.viewport.SetYOffset(m.viewport.YOffset + lines)
	m.maybeLoadMore()
}

// maybeLoadMore pulls the next page once the top of the content is within
// half a screen, then shifts the offset so the visible lines stay put.
func (m *ChatScreenModel) maybeLoadMore() {
	if !m.session.HasMore() || !chat.ShouldLoadMore(m.viewport.YOffset, m.viewport.Height) {
		return
	}
	before := m.lineCount
	added := m.session.LoadMore()
	m.refreshContent()
	m.viewport.SetYOffset(m.viewport.YOffset + m.lineCount - before)
	logger.Debug("Loaded %d older messages for chat %s (%d/%d shown)", added, m.ref.ID, m.session.Len(), m.session.HistoryLen())
}

func (m ChatScreenModel) send() (ChatScreenModel, tea.Cmd) {
	m.session.SetDraft(m.input.Value())
	sent, ok := m.session.Send()
	if !ok {
		return m, nil
	}
	m.input.Reset()
	m.status = ""
	m.err = nil
	m.refreshContent()
	m.viewport.GotoBottom()
	return m, m.persistCmd(sent)
}

func (m ChatScreenModel) persistCmd(sent models.Message) tea.Cmd {
	chatID, store := m.ref.ID, m.store
	return func() tea.Msg {
		if store == nil {
			return messageSentMsg{chatID: chatID, msg: sent}
		}
		err := chat.SaveSent(context.Background(), store, chatID, sent)
		if err != nil {
			logger.Error("Failed to persist message in chat %s: %v", chatID, err)
		}
		return messageSentMsg{chatID: chatID, msg: sent, err: err}
	}
}

func (m ChatScreenModel) copyLastCmd() tea.Cmd {
	window := m.session.Window()
	if len(window) == 0 {
		return nil
	}
	text := window[0].Content
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m ChatScreenModel) View() string {
	e := m.env

	body := m.viewport.View()
	if m.session.Len() == 0 {
		body = lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center,
			e.styles.Sub.Render(e.t("chat_screen.empty")))
	}

	status := e.styles.Help.Render(e.t("help.chat"))
	if m.err != nil {
		status = e.styles.Error.Render(fmt.Sprintf("%s: %v", m.status, m.err))
	} else if m.status != "" {
		status = e.styles.Status.Render(m.status)
	}

	bar := e.styles.ChatBar.Width(max(m.width-2, 10)).Render(m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, body, status, bar)
}
