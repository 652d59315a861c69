package cryptox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/common"
)

func TestHashPassword_SizesAndRoundTrip(t *testing.T) {
	t.Parallel()

	hash, salt, err := HashPassword("p@ss1234")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if len(hash) != HashSize {
		t.Fatalf("hash length: got %d want %d", len(hash), HashSize)
	}
	if len(salt) != SaltSize {
		t.Fatalf("salt length: got %d want %d", len(salt), SaltSize)
	}

	ok, err := VerifyPassword("p@ss1234", hash, salt)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("correct password did not verify")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h1, s1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, s2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if bytes.Equal(s1, s2) {
		t.Fatal("two calls produced the same salt")
	}
	if bytes.Equal(h1, h2) {
		t.Fatal("two calls produced the same hash for different salts")
	}
}

func TestHashPassword_RejectsBlank(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"", "   ", "\t\n"} {
		_, _, err := HashPassword(pw)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("password %q: want ErrorValidation, got %v", pw, err)
		}
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, salt, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := VerifyPassword("battery staple", hash, salt)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if ok {
		t.Fatal("wrong password verified")
	}
}

func TestVerifyPassword_RejectsBadLengths(t *testing.T) {
	t.Parallel()

	hash, salt, err := HashPassword("p@ss1234")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if _, err := VerifyPassword("p@ss1234", hash[:HashSize-1], salt); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("short hash: want ErrorValidation, got %v", err)
	}
	if _, err := VerifyPassword("p@ss1234", hash, salt[:SaltSize-1]); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("short salt: want ErrorValidation, got %v", err)
	}
	if _, err := VerifyPassword("p@ss1234", nil, salt); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("nil hash: want ErrorValidation, got %v", err)
	}
}

func TestVerifyPassword_RejectsBlank(t *testing.T) {
	t.Parallel()

	hash, salt, err := HashPassword("p@ss1234")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if _, err := VerifyPassword("  ", hash, salt); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("blank password: want ErrorValidation, got %v", err)
	}
}
