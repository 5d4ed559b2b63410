// Package uuid wraps google/uuid behind an interface so IDs can be pinned in tests
package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid . Generator

// Generator hands out unique string IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator returns random (v4) UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
