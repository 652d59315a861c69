// Package cryptox implements the password credential codec: a keyed
// HMAC-SHA512 digest of the cleartext password using a per-account random
// 128-byte key (the salt). Both functions are pure and safe for concurrent
// use.
package cryptox

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/common"
)

const (
	// HashSize is the length of a password digest in bytes.
	HashSize = sha512.Size
	// SaltSize is the length of the per-account HMAC key in bytes.
	SaltSize = 128
)

// HashPassword generates a fresh random salt and returns the HMAC-SHA512
// digest of the UTF-8 password bytes keyed by that salt. Every call produces
// an independent salt; salts are never reused across accounts or calls.
func HashPassword(password string) (hash, salt []byte, err error) {
	if strings.TrimSpace(password) == "" {
		return nil, nil, fmt.Errorf("%w: password must not be empty or whitespace only", common.ErrorValidation)
	}

	salt = common.GenerateRandByteArray(SaltSize)

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

// VerifyPassword recomputes the keyed digest of password using salt and
// compares it against hash in constant time. It returns true iff the digests
// match.
func VerifyPassword(password string, hash, salt []byte) (bool, error) {
	if strings.TrimSpace(password) == "" {
		return false, fmt.Errorf("%w: password must not be empty or whitespace only", common.ErrorValidation)
	}
	if len(hash) != HashSize {
		return false, fmt.Errorf("%w: invalid password hash length (%d bytes expected)", common.ErrorValidation, HashSize)
	}
	if len(salt) != SaltSize {
		return false, fmt.Errorf("%w: invalid password salt length (%d bytes expected)", common.ErrorValidation, SaltSize)
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), hash), nil
}
