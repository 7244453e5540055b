package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"support-dashboard-service/internal/auth/core/ports"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type LoginInput struct {
	Username string
	Password string
}

// LoginUseCase checks the single configured admin account and issues a
// session token for it.
type LoginUseCase struct {
	username     string
	passwordHash []byte
	tokens       ports.TokenIssuer
}

func NewLoginUseCase(username, passwordHash string, tokens ports.TokenIssuer) *LoginUseCase {
	return &LoginUseCase{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.username)) == 1
	// bcrypt runs on every attempt, known username or not
	passErr := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password))
	if !userOK || passErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(uc.username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
