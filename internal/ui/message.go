package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/saravenpi/parley/internal/models"
)

// renderMessage draws one bubble across width columns. sameSender drops the
// blank line above a bubble that continues a run from the same side.
func renderMessage(e *env, msg models.Message, sameSender bool, width int) string {
	s := e.styles
	maxText := max(width*3/4-2, 10)
	text := wordwrap.String(msg.Content, maxText)

	meta := formatMessageTime(msg.Timestamp)
	if msg.IsMine {
		if msg.Read {
			meta = "✓✓ " + meta
		} else {
			meta = "✓ " + meta
		}
	}

	var b strings.Builder
	if !sameSender {
		b.WriteString("\n")
	}
	if msg.IsMine {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, s.BubbleMine.Render(text)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, s.BubbleMeta.Render(meta)))
	} else {
		b.WriteString(s.BubbleOther.Render(text))
		b.WriteString("\n")
		b.WriteString(s.BubbleMeta.Render(meta))
	}
	return b.String()
}

// renderConversation draws window (most recent first) oldest-at-top, so the
// newest message ends up at the bottom of the viewport.
func renderConversation(e *env, window []models.Message, hasMore bool, width int) string {
	var b strings.Builder
	if !hasMore {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, e.styles.Sub.Render(e.t("chat_screen.beginning"))))
		b.WriteString("\n")
	}
	for i := len(window) - 1; i >= 0; i-- {
		msg := window[i]
		sameSender := i < len(window)-1 && window[i+1].IsMine == msg.IsMine
		b.WriteString(renderMessage(e, msg, sameSender, width))
		if i > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
