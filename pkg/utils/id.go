package utils

import "github.com/google/uuid"

// NewID generates an opaque unique identifier for an entity.
func NewID() string {
	return uuid.New().String()
}
