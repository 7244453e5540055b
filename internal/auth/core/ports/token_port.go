package ports

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenValidator returns the subject of a valid token, ErrExpiredToken for an
// expired one and ErrInvalidToken for anything else.
type TokenValidator interface {
	Validate(token string) (string, error)
}
