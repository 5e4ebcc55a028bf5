package user

import (
	"time"

	"github.com/google/uuid"
)

// User is auto-created the first time an identifier (email, phone, chat id)
// submits a request, and reused afterwards.
type User struct {
	ID         uuid.UUID `json:"id"`
	Identifier string    `json:"identifier"`
	CreatedAt  time.Time `json:"created_at"`
}

func New(identifier string) User {
	return User{
		ID:         uuid.New(),
		Identifier: identifier,
		CreatedAt:  time.Now().UTC(),
	}
}
