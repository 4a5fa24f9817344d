package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", MinBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal plaintext")
	}
	if err := ComparePassword(hash, "secret1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
}

func TestPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret1", MinBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := ComparePassword(hash, "wrongpass"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestPasswordCorruptDigest(t *testing.T) {
	if err := ComparePassword("not-a-bcrypt-digest", "secret1"); !errors.Is(err, ErrCorruptDigest) {
		t.Fatalf("expected ErrCorruptDigest, got %v", err)
	}
}

func TestHashCostClamped(t *testing.T) {
	// A sub-minimum cost must not produce a weak digest.
	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost < MinBcryptCost {
		t.Fatalf("cost %d below minimum %d", cost, MinBcryptCost)
	}
	if err := ComparePassword(hash, "secret1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
}
