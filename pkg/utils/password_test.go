package utils

import "testing"

func TestHashPassword_Deterministic(t *testing.T) {
	t.Parallel()

	a := HashPassword("testPassword", "testSalt")
	b := HashPassword("testPassword", "testSalt")
	if a != b {
		t.Fatalf("same (pw, salt) must hash identically: %q vs %q", a, b)
	}
	if a == "testPassword" {
		t.Fatal("hash must not equal the plaintext")
	}
}

func TestHashPassword_SaltChangesHash(t *testing.T) {
	t.Parallel()

	a := HashPassword("testPassword", "saltA")
	b := HashPassword("testPassword", "saltB")
	if a == b {
		t.Fatal("different salts must produce different hashes")
	}
}

func TestNewSalt_Unique(t *testing.T) {
	t.Parallel()

	a, b := NewSalt(), NewSalt()
	if a == b {
		t.Fatal("two salts must not collide")
	}
	if len(a) != saltLen*2 {
		t.Fatalf("salt hex length: got %d want %d", len(a), saltLen*2)
	}
}
