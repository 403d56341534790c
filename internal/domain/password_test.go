package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateTempPassword(t *testing.T) {
	t.Parallel()

	pw, err := GenerateTempPassword(8)
	if err != nil {
		t.Fatalf("generate temp password: %v", err)
	}
	if len(pw) != 8 {
		t.Fatalf("temp password length = %d, want 8", len(pw))
	}
	for _, r := range pw {
		if !strings.ContainsRune(tempPasswordAlphabet, r) {
			t.Fatalf("unexpected character %q in temp password", r)
		}
	}
}

func TestGenerateTempPasswordRejectsNonPositiveLength(t *testing.T) {
	t.Parallel()

	if _, err := GenerateTempPassword(0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
