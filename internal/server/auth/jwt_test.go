package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer   = "userdir"
	testAudience = "userdir-clients"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := int64(123)

	tok, err := GenerateToken(userID, secret, testIssuer, testAudience, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotUserID, err := GetUserIDFromToken(tok, secret, testIssuer, testAudience)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %d want %d", gotUserID, userID)
	}
}

func TestGenerateToken_ExpiryIsIssueTimePlusValidity(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	validity := 7 * 24 * time.Hour

	before := time.Now()
	tok, err := GenerateToken(1, secret, testIssuer, testAudience, validity)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	after := time.Now()

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) { return secret, nil })
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	exp := claims.ExpiresAt.Time
	if exp.Before(before.Add(validity).Add(-time.Second)) || exp.After(after.Add(validity).Add(time.Second)) {
		t.Fatalf("expiry %v not within issue-time+%v", exp, validity)
	}
	if claims.Issuer != testIssuer {
		t.Fatalf("issuer: got %q want %q", claims.Issuer, testIssuer)
	}
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(1, secret, testIssuer, testAudience, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, secret, testIssuer, testAudience)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(2, []byte("right-secret"), testIssuer, testAudience, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, []byte("wrong-secret"), testIssuer, testAudience)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_WrongIssuerOrAudience(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken(3, secret, testIssuer, testAudience, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUserIDFromToken(tok, secret, "someone-else", testAudience); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("wrong issuer: expected common.ErrInvalidToken, got %v", err)
	}
	if _, err := GetUserIDFromToken(tok, secret, testIssuer, "other-audience"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("wrong audience: expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetUserIDFromToken("not.a.jwt", []byte("k"), testIssuer, testAudience)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
