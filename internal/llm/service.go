package llm

import (
	"context"
	"time"
)

// Role constants for chat messages
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer defines the interface for text-completion operations
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Config represents completion service configuration
type Config struct {
	APIKey      string        `json:"api_key,omitempty"`
	Endpoint    string        `json:"endpoint,omitempty"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Timeout     time.Duration `json:"timeout"`
	MaxRetries  int           `json:"max_retries"`
}

// System builds a system message
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User builds a user message
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant builds an assistant message
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
