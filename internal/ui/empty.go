package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type emptyKind int

const (
	emptyChats emptyKind = iota
	emptyGroups
)

// emptyView is shown instead of a list with no rows.
func emptyView(e *env, kind emptyKind, width, height int) string {
	first, second := "chat_list.empty_chat", "chat_list.new_chat"
	if kind == emptyGroups {
		first, second = "chat_list.empty_group", "chat_list.new_group"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		e.styles.Normal.Render(e.t(first)),
		"",
		e.styles.Normal.Render(e.t(second)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// footerView is the encryption notice under the chat list.
func footerView(e *env, width int) string {
	line := e.styles.Normal.Render("🔒 "+e.t("chat_list.encrypted")+" ") +
		e.styles.Accent.Render(e.t("chat_list.end_to_end"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// placeholderView is used by tabs that have no content yet.
func placeholderView(e *env, key string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, e.styles.Sub.Render(e.t(key)))
}
