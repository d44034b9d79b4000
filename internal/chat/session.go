// Package chat holds the state behind a conversation screen: the full
// history, the window of it currently rendered, and the composer draft.
//
// History is ordered newest-first. The window starts as the first page of
// history and grows toward older messages with LoadMore; sent messages are
// prepended. The view renders the window reversed so the most recent message
// sits at the bottom.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saravenpi/parley/internal/models"
)

// PageSize is how many history messages each page adds to the window.
const PageSize = 50

// Session is the pagination and send state for one conversation.
// It is not safe for concurrent use; the UI drives it from its update loop.
type Session struct {
	history  []models.Message
	window   []models.Message
	cursor   int // history items already in window
	pageSize int
	draft    string

	now   func() time.Time
	newID func() string
}

// Option configures a Session.
type Option func(*Session)

// WithPageSize overrides PageSize. Non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) { s.newID = gen }
}

// NewSession starts a session over history (newest-first) with the first
// page already loaded.
func NewSession(history []models.Message, opts ...Option) *Session {
	s := &Session{
		history:  history,
		pageSize: PageSize,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadPage()
	return s
}

// Window returns the displayed messages, most recent first. The slice is
// shared with the session and must not be modified.
func (s *Session) Window() []models.Message { return s.window }

// Len is the number of displayed messages.
func (s *Session) Len() int { return len(s.window) }

// HistoryLen is the number of messages the session started with.
func (s *Session) HistoryLen() int { return len(s.history) }

// HasMore reports whether LoadMore would add anything.
func (s *Session) HasMore() bool { return s.cursor < len(s.history) }

func (s *Session) Draft() string { return s.draft }

func (s *Session) SetDraft(text string) { s.draft = text }

// Send commits the current draft. It returns the new message and true, or
// false without touching any state when the draft is blank.
func (s *Session) Send() (models.Message, bool) {
	content := strings.TrimSpace(s.draft)
	if content == "" {
		return models.Message{}, false
	}

	msg := models.Message{
		ID:        s.newID(),
		Content:   content,
		IsMine:    true,
		Read:      false,
		Timestamp: s.now(),
	}

	window := make([]models.Message, 0, len(s.window)+1)
	window = append(window, msg)
	s.window = append(window, s.window...)
	s.draft = ""
	return msg, true
}

// LoadMore appends the next page of older history to the window and returns
// how many messages were added. Once the whole history is shown it returns 0.
func (s *Session) LoadMore() int {
	return s.loadPage()
}

func (s *Session) loadPage() int {
	if s.cursor >= len(s.history) {
		return 0
	}
	end := min(s.cursor+s.pageSize, len(s.history))
	next := s.history[s.cursor:end]
	s.window = append(s.window, next...)
	s.cursor = end
	return len(next)
}

// ShouldLoadMore reports whether the unrendered content beyond the viewport
// edge is within half a screen. remaining and viewportHeight are in the same
// unit (terminal lines).
func ShouldLoadMore(remaining, viewportHeight int) bool {
	if viewportHeight <= 0 {
		return remaining <= 0
	}
	return remaining*2 <= viewportHeight
}
