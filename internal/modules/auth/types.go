package auth

import (
	"context"
	"errors"
	"time"

	"github.com/mrigtrishna/core/internal/models"
)

const (
	// CodeTTL is deliberately tight: it bounds the window in which an
	// intercepted email is useful.
	CodeTTL = 30 * time.Second

	// SessionTTL is the lifetime of the admin session cookie.
	SessionTTL = 24 * time.Hour
)

// AuthDTO is the single /auth request body; action selects the step.
type AuthDTO struct {
	Action string `json:"action" binding:"required"` // send | verify | logout
	Email  string `json:"email"`
	Code   string `json:"code"`
}

var (
	errUnauthorizedEmail = errors.New("unauthorized email")
	errInvalidCode       = errors.New("invalid code")
	errCodeExpired       = errors.New("code expired")
)

// CodeStore is the admin-code collection access the service needs.
type CodeStore interface {
	// Find returns the record matching exactly (email, code), or nil if
	// absent.
	Find(ctx context.Context, email, code string) (*models.AdminCodeModel, error)
	Insert(ctx context.Context, rec *models.AdminCodeModel) error
	DeleteByEmail(ctx context.Context, email string) error
}

// Mailer delivers the one-time code.
type Mailer interface {
	SendOTP(to, code string) error
}
