package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an owning user for data transfer between layers.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
