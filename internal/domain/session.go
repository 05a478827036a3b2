package domain

import "time"

// PlaceholderTitle is assigned at session creation and replaced once the
// first user/assistant pair exists.
const PlaceholderTitle = "New Legal Consultation"

// Session represents one consultation conversation.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages,omitempty"`
}

// SessionSummary is the listing view of a session, without message bodies.
type SessionSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single turn entry in a session. Seq is strictly increasing
// within the session and determines chronological order.
type Message struct {
	SessionID string    `json:"session_id"`
	Seq       int64     `json:"seq"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ContextMessage is one (role, content) entry of the bounded history handed
// to the model provider.
type ContextMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
