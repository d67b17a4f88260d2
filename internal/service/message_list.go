package service

import (
	"slices"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
)

// MessageList is the ordered chat history of the selected team, unique by message id
type MessageList struct {
	team     uuid.UUID
	messages []models.ChatMessage
	ids      map[uuid.UUID]struct{}
}

// NewMessageList creates an empty list
func NewMessageList() *MessageList {
	return &MessageList{ids: make(map[uuid.UUID]struct{})}
}

// Replace swaps in the loaded history of team
func (l *MessageList) Replace(team uuid.UUID, history []models.ChatMessage) {
	l.team = team
	l.messages = make([]models.ChatMessage, 0, len(history))
	l.ids = make(map[uuid.UUID]struct{}, len(history))
	for _, m := range history {
		l.Append(m)
	}
}

// Append adds m unless a message with the same id is already present. It reports whether m was added.
func (l *MessageList) Append(m models.ChatMessage) bool {
	if _, ok := l.ids[m.ID]; ok {
		return false
	}
	l.ids[m.ID] = struct{}{}
	l.messages = append(l.messages, m)
	return true
}

// Team returns the team the list belongs to
func (l *MessageList) Team() uuid.UUID {
	return l.team
}

// Messages returns a copy of the messages in order
func (l *MessageList) Messages() []models.ChatMessage {
	return slices.Clone(l.messages)
}

// Len returns the number of messages
func (l *MessageList) Len() int {
	return len(l.messages)
}
