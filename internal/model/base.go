package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains common fields for all models
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Choice is a code/label pair served by the lookup endpoints
// (document types, appointment statuses).
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
