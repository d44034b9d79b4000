package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saravenpi/parley/internal/i18n"
	"github.com/saravenpi/parley/internal/models"
	"github.com/saravenpi/parley/internal/theme"
)

var testNow = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

func newTestEnv() *env {
	return newEnv(i18n.MustNew(i18n.English), theme.For(theme.Light), func() time.Time { return testNow })
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// testHistory builds n messages newest-first, alternating senders.
func testHistory(n int) []models.Message {
	history := make([]models.Message, n)
	for i := range history {
		history[i] = models.Message{
			ID:        fmt.Sprintf("h%03d", i),
			Content:   fmt.Sprintf("message %d", i),
			IsMine:    i%2 == 0,
			Read:      true,
			Timestamp: testNow.Add(-time.Duration(i) * time.Minute),
		}
	}
	return history
}
