package model

import "github.com/google/uuid"

// NewItemID creates a fresh identity for locally synthesized items
// (test fixtures, offline placeholders). Server items keep the GUID the
// server assigned.
func NewItemID() uuid.UUID {
	return uuid.New()
}
