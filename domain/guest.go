package domain

import "time"

type Sender string

const (
	SenderGuest Sender = "guest"
	SenderAI    Sender = "ai"
	SenderHost  Sender = "host"
)

type Chat struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Property  string `json:"property"`
	LastMsg   string `json:"last_msg"`
	// Context is handed to the reply generator together with the guest message.
	Context string `json:"-"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
