package ui

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// formatDate shows the time for today's timestamps and the date otherwise.
func formatDate(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return t.Format("15:04")
	}
	return t.Format("02/01/2006")
}

// formatMessageTime is the 12-hour clock shown under a bubble.
func formatMessageTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// truncate shortens s to width terminal cells, ending with an ellipsis.
// Newlines collapse to spaces first.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// initials is the avatar text for a chat name.
func initials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		r := []rune(fields[0])
		return strings.ToUpper(string(r[0]))
	default:
		a := []rune(fields[0])
		b := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(a[0]) + string(b[0]))
	}
}
