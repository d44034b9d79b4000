package models

import "time"

// ChatSummary is one row of the chat list.
type ChatSummary struct {
	ID                string
	Name              string
	LastMessage       string
	Timestamp         time.Time
	Unread            bool
	AvatarURL         string
	LastMessageIsMine bool
	LastMessageRead   bool
	IsGroup           bool
}

// Message is immutable once created.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsMine    bool      `json:"is_mine"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRef is everything the chat list hands to the chat screen.
type ChatRef struct {
	ID   string
	Name string
}
