package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes temporary passwords before they are stored. The ledger
// never verifies passwords; sign-in lives elsewhere and reads the same column.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher clamps cost into bcrypt's supported range so a misconfigured
// BCRYPT_ROUNDS degrades to the default cost instead of failing every hash.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
