package test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	pkgAuth "github.com/garvbarthwal/kisaan/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides. The default
// token format is "token-<id>-<role>".
type StrategyStub struct {
	IssueFn func(int64, string) (string, error)
	ParseFn func(string) (int64, string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64, role string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, role)
	}
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	parts := strings.SplitN(token, "-", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return 0, "", pkgAuth.ErrInvalidToken
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, "", pkgAuth.ErrInvalidToken
	}
	return id, parts[2], nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub resolves any token to the configured identity.
type TokenParserStub struct {
	ID   int64
	Role model.Role
	Err  error
}

// ParseToken returns the configured identity or error.
func (s TokenParserStub) ParseToken(string) (int64, model.Role, error) {
	if s.Err != nil {
		return 0, "", s.Err
	}
	role := s.Role
	if role == "" {
		role = model.RoleConsumer
	}
	return s.ID, role, nil
}
