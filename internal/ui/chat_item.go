package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/saravenpi/parley/internal/models"
)

type chatItem struct {
	chat models.ChatSummary
}

func (i chatItem) FilterValue() string { return i.chat.Name }

// chatRowHeight is the height of one chat row plus its spacing, in lines.
const chatRowHeight = 3

// chatDelegate draws a chat row: avatar, name and date on the first line,
// read marks, preview and unread dot on the second.
type chatDelegate struct {
	env *env
}

func (d chatDelegate) Height() int                             { return 2 }
func (d chatDelegate) Spacing() int                            { return 1 }
func (d chatDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d chatDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(chatItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderChatRow(d.env, ci.chat, m.Width(), index == m.Index()))
}

func renderChatRow(e *env, chat models.ChatSummary, width int, selected bool) string {
	s := e.styles
	if width <= 0 {
		width = 80
	}
	if selected {
		width -= 2
	}

	avatar := s.Avatar.Render(fmt.Sprintf("%-2s", initials(chat.Name)))
	avatarWidth := lipgloss.Width(avatar) + 1
	inner := width - avatarWidth
	if inner < 10 {
		inner = 10
	}

	date := formatDate(chat.Timestamp, e.now())
	nameStyle := s.ChatName
	if selected {
		nameStyle = s.ChatNameSelected
	}
	nameWidth := inner - runewidth.StringWidth(date) - 1
	name := nameStyle.Render(truncate(chat.Name, nameWidth))
	gap := inner - lipgloss.Width(name) - runewidth.StringWidth(date)
	top := name + strings.Repeat(" ", max(gap, 1)) + s.Sub.Render(date)

	var marks string
	if chat.LastMessageIsMine {
		if chat.LastMessageRead {
			marks = "✓✓ "
		} else {
			marks = "✓ "
		}
	}
	dot := ""
	if chat.Unread {
		dot = " " + s.UnreadDot.Render("●")
	}
	previewWidth := inner - runewidth.StringWidth(marks) - lipgloss.Width(dot)
	preview := truncate(chat.LastMessage, previewWidth)
	bottomGap := inner - runewidth.StringWidth(marks) - runewidth.StringWidth(preview) - lipgloss.Width(dot)
	bottom := s.Sub.Render(marks+preview) + strings.Repeat(" ", max(bottomGap, 0)) + dot

	spacer := strings.Repeat(" ", lipgloss.Width(avatar))
	row := lipgloss.JoinVertical(lipgloss.Left,
		avatar+" "+top,
		spacer+" "+bottom,
	)
	if selected {
		return s.ChatRowSelected.Render(row)
	}
	return row
}
