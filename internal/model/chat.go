package model

import "time"

// Chat is a pre-seeded conversation. Chats themselves have no
// create/delete path; only their preview fields change.
type Chat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar,omitempty"`
	LastMessage string `json:"last_message,omitempty"`
	Unread      int    `json:"unread"`
}

// Sender is a point-in-time snapshot of who sent a message, not a live
// reference into any group's member list.
type Sender struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Message is append-only; there is no edit or delete.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
