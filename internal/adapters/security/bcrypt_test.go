package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherUsesConfiguredCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash("temp-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hashed))
	if err != nil {
		t.Fatalf("read cost: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Fatalf("cost = %d, want %d", cost, bcrypt.MinCost)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte("temp-password")); err != nil {
		t.Fatalf("stored hash does not match its password: %v", err)
	}
}

func TestBcryptHasherClampsOutOfRangeCost(t *testing.T) {
	t.Parallel()

	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hasher := NewBcryptHasher(cost)
		if hasher.cost != bcrypt.DefaultCost {
			t.Fatalf("NewBcryptHasher(%d).cost = %d, want %d", cost, hasher.cost, bcrypt.DefaultCost)
		}
	}
}
