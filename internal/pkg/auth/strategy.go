package auth

import "time"

// Options tunes token strategy behaviour.
type Options struct {
	TTL time.Duration
}

// Strategy abstracts auth token issuing and validation. Tokens carry the
// caller identity together with the marketplace role so request handling
// never re-reads the user row on the hot path.
type Strategy interface {
	IssueToken(userID int64, role string) (string, error)
	ParseToken(token string) (userID int64, role string, err error)
	Name() string
}
