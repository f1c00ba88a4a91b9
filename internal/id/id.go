package id

import "github.com/google/uuid"

// GenerateID creates a random session identifier.
func GenerateID() string {
	return uuid.NewString()
}
