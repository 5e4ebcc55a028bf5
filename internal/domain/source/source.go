package source

import (
	"time"

	"github.com/google/uuid"
)

// Source is a channel through which user requests arrive (bot, email, phone).
// Identifier is unique across sources.
type Source struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Identifier string    `json:"identifier"`
	CreatedAt  time.Time `json:"created_at"`
}

func New(name, identifier string) Source {
	return Source{
		ID:         uuid.New(),
		Name:       name,
		Identifier: identifier,
		CreatedAt:  time.Now().UTC(),
	}
}
