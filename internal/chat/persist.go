package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/saravenpi/parley/internal/models"
)

// Store is the part of storage.Store the chat package needs.
type Store interface {
	Put(ctx context.Context, key string, value any) error
	GetInto(ctx context.Context, key string, dst any) (bool, error)
}

// SentKey is the storage key holding messages the user sent in a chat.
func SentKey(chatID string) string {
	return fmt.Sprintf("chat.%s.sent", chatID)
}

// LoadSent returns the messages previously sent in chatID, newest-first.
func LoadSent(ctx context.Context, store Store, chatID string) ([]models.Message, error) {
	var sent []models.Message
	if _, err := store.GetInto(ctx, SentKey(chatID), &sent); err != nil {
		return nil, err
	}
	return sent, nil
}

// sentMu serializes the read-modify-write in SaveSent. Sends run as separate
// commands and may overlap.
var sentMu sync.Mutex

// SaveSent records msg as the most recent message sent in chatID.
func SaveSent(ctx context.Context, store Store, chatID string, msg models.Message) error {
	sentMu.Lock()
	defer sentMu.Unlock()

	sent, err := LoadSent(ctx, store, chatID)
	if err != nil {
		return err
	}
	sent = append([]models.Message{msg}, sent...)
	return store.Put(ctx, SentKey(chatID), sent)
}

// MergeHistory puts sent messages (newest-first) ahead of the seeded
// history. Seeded timestamps are generated relative to the current launch, so
// they cannot be used to order messages saved in earlier sessions.
func MergeHistory(sent, seeded []models.Message) []models.Message {
	history := make([]models.Message, 0, len(sent)+len(seeded))
	history = append(history, sent...)
	return append(history, seeded...)
}
