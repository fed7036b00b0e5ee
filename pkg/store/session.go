package store

import "ai-memoire-be/pkg/memoire"

// Chat roles, aligned with the provider message format.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// MaxHistoryEntries bounds the per-user conversation history. Oldest
// entries are evicted first.
const MaxHistoryEntries = 20

// ChatEntry is one conversational turn kept in a user's history.
type ChatEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Workflow is a user's current position inside the mémoire outline.
// It exists only once a document workflow has started for that user.
type Workflow struct {
	Theme   string            `json:"theme"`
	Section memoire.SectionID `json:"section"`
}

// Session is the in-memory state for one user id. It is created lazily
// on the first message and lives for the process lifetime.
type Session struct {
	UserID   string      `json:"user_id"`
	History  []ChatEntry `json:"history"`
	Workflow *Workflow   `json:"workflow,omitempty"`
}
