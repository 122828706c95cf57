package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Room is a physical classroom. Its identity is the (college, building, name)
// triple; rooms are created by schedule imports and never mutated afterwards.
type Room struct {
	ID       uuid.UUID
	College  string
	Building string
	Name     string
}

// NewRoom constructs a room with a generated identifier. Identity fields are
// trimmed because imported rows arrive with stray whitespace.
func NewRoom(college, building, name string) *Room {
	return &Room{
		ID:       uuid.New(),
		College:  strings.TrimSpace(college),
		Building: strings.TrimSpace(building),
		Name:     strings.TrimSpace(name),
	}
}
