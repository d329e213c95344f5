package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh uuid string for model primary keys.
func GenerateID() string {
	return uuid.New().String()
}

// ValidID reports whether s parses as a uuid. Malformed ids get a 400
// instead of leaking into queries.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
