package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})

	token, err := s.IssueToken(42, "farmer")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	userID, role, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if userID != 42 || role != "farmer" {
		t.Fatalf("unexpected identity: %d %s", userID, role)
	}
}

func TestHMACStrategyRejectsTampering(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	token, err := s.IssueToken(7, "consumer")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	forged := strings.Replace(string(raw), ":consumer:", ":admin:", 1)
	forgedToken := base64.StdEncoding.EncodeToString([]byte(forged))

	if _, _, err := s.ParseToken(forgedToken); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyRejectsWrongSecret(t *testing.T) {
	token, err := NewHMACStrategy("one", Options{}).IssueToken(1, "consumer")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, _, err := NewHMACStrategy("two", Options{}).ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyRejectsExpired(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	expires := time.Now().Add(-time.Hour).Unix()
	payload := fmt.Sprintf("%d:%s:%d", 1, "consumer", expires)
	token := base64.StdEncoding.EncodeToString([]byte(payload + ":" + s.sign(payload)))
	if _, _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyRejectsGarbage(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	for _, token := range []string{"", "not-base64!!", base64.StdEncoding.EncodeToString([]byte("a:b"))} {
		if _, _, err := s.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected invalid token error for %q, got %v", token, err)
		}
	}
}

func TestHMACStrategyRejectsSeparatorInRole(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	if _, err := s.IssueToken(1, "ad:min"); err == nil {
		t.Fatal("expected error for role containing separator")
	}
}

func TestHMACStrategyName(t *testing.T) {
	if NewHMACStrategy("secret", Options{}).Name() != "hmac" {
		t.Fatal("unexpected strategy name")
	}
}
