package utils

import "github.com/google/uuid"

// RefGenerator produces opaque booking confirmation codes (PNR for flights,
// booking reference for hotels).
type RefGenerator struct {
}

func NewRefGenerator() *RefGenerator {
	return &RefGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 when v7 generation fails.
func (g *RefGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
