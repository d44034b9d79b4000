// Package fixtures provides the seeded chats and conversations the client
// starts with. The seed is embedded YAML; message histories are generated
// deterministically from a short script so every chat has several pages.
package fixtures

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saravenpi/parley/internal/models"
)

//go:embed seed.yml
var seedYAML []byte

// messageGap is the time between consecutive seeded messages.
const messageGap = 7 * time.Minute

type seedChat struct {
	ID                string `yaml:"id"`
	Name              string `yaml:"name"`
	LastMessage       string `yaml:"last_message"`
	MinutesAgo        int    `yaml:"minutes_ago"`
	Unread            bool   `yaml:"unread"`
	AvatarURL         string `yaml:"avatar_url"`
	LastMessageIsMine bool   `yaml:"last_message_is_mine"`
	LastMessageRead   bool   `yaml:"last_message_read"`
	IsGroup           bool   `yaml:"is_group"`
	Messages          int    `yaml:"messages"`
}

type scriptLine struct {
	Mine bool   `yaml:"mine"`
	Text string `yaml:"text"`
}

// Seed is a parsed fixture file.
type Seed struct {
	Entries []seedChat   `yaml:"chats"`
	Script  []scriptLine `yaml:"script"`
}

var (
	defaultSeed    *Seed
	defaultSeedErr error
	seedOnce       sync.Once
)

// Default returns the embedded seed, parsed once.
func Default() (*Seed, error) {
	seedOnce.Do(func() {
		defaultSeed, defaultSeedErr = Parse(seedYAML)
	})
	return defaultSeed, defaultSeedErr
}

// Parse reads a seed file.
func Parse(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	seen := make(map[string]bool, len(seed.Entries))
	for _, c := range seed.Entries {
		if c.ID == "" {
			return nil, fmt.Errorf("seed chat %q has no id", c.Name)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate seed chat id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return &seed, nil
}

// Chats returns the chat list as of now, most recent first.
func (s *Seed) Chats(now time.Time) []models.ChatSummary {
	chats := make([]models.ChatSummary, 0, len(s.Entries))
	for _, c := range s.Entries {
		chats = append(chats, models.ChatSummary{
			ID:                c.ID,
			Name:              c.Name,
			LastMessage:       c.LastMessage,
			Timestamp:         now.Add(-time.Duration(c.MinutesAgo) * time.Minute),
			Unread:            c.Unread,
			AvatarURL:         c.AvatarURL,
			LastMessageIsMine: c.LastMessageIsMine,
			LastMessageRead:   c.LastMessageRead,
			IsGroup:           c.IsGroup,
		})
	}
	return chats
}

// History returns chatID's conversation newest-first. The first message is
// the chat's last message; older ones cycle through the script. Unknown ids
// have an empty history.
func (s *Seed) History(chatID string, now time.Time) []models.Message {
	var chat *seedChat
	for i := range s.Entries {
		if s.Entries[i].ID == chatID {
			chat = &s.Entries[i]
			break
		}
	}
	if chat == nil || chat.Messages <= 0 {
		return nil
	}

	newest := now.Add(-time.Duration(chat.MinutesAgo) * time.Minute)
	history := make([]models.Message, 0, chat.Messages)
	history = append(history, models.Message{
		ID:        fmt.Sprintf("%s-%04d", chat.ID, 0),
		Content:   chat.LastMessage,
		IsMine:    chat.LastMessageIsMine,
		Read:      !chat.LastMessageIsMine || chat.LastMessageRead,
		Timestamp: newest,
	})

	for i := 1; i < chat.Messages && len(s.Script) > 0; i++ {
		line := s.Script[(i-1)%len(s.Script)]
		history = append(history, models.Message{
			ID:        fmt.Sprintf("%s-%04d", chat.ID, i),
			Content:   line.Text,
			IsMine:    line.Mine,
			Read:      true,
			Timestamp: newest.Add(-time.Duration(i) * messageGap),
		})
	}
	return history
}
