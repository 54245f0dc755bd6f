package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// bcryptHasher implements ports.PasswordHasher with bcrypt. The salt is
// generated per hash and embedded in the output string along with the
// cost factor.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher using the given bcrypt cost.
// Costs below bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
