package business

import (
	"fmt"

	"github.com/google/uuid"
)

const movieIDPrefix = "m"

// UUIDGenerator generates time-ordered identifiers (UUID version 7)
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewDirectorID returns a new director identifier
func (UUIDGenerator) NewDirectorID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("could not generate director ID: %w", err)
	}
	return id.String(), nil
}

// NewMovieID returns a new movie identifier, prefixed so it can't be mistaken for a director's
func (UUIDGenerator) NewMovieID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("could not generate movie ID: %w", err)
	}
	return movieIDPrefix + id.String(), nil
}
