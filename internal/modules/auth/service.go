package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mrigtrishna/core/internal/models"
	"github.com/mrigtrishna/core/internal/pkg/jwt"
)

// Service runs the passcode login flow for the single admin identity.
type Service struct {
	codes      CodeStore
	mailer     Mailer
	adminEmail string
}

func NewService(codes CodeStore, mailer Mailer, adminEmail string) *Service {
	return &Service{codes: codes, mailer: mailer, adminEmail: adminEmail}
}

// Send issues a fresh one-time code for the admin address. Any prior codes
// for the email are purged first, so only the newest code can verify.
func (s *Service) Send(ctx context.Context, email string) error {
	if !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		return errUnauthorizedEmail
	}

	if err := s.codes.DeleteByEmail(ctx, s.adminEmail); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	rec := models.AdminCodeModel{
		Email:     s.adminEmail,
		Code:      code,
		ExpiresAt: time.Now().Add(CodeTTL),
	}
	if err := s.codes.Insert(ctx, &rec); err != nil {
		return err
	}

	return s.mailer.SendOTP(s.adminEmail, code)
}

// Verify checks the submitted code and returns a signed session token on
// success. An expired record is left in place; it is only purged by the next
// send or a later successful verify.
func (s *Service) Verify(ctx context.Context, email, code string) (string, error) {
	rec, err := s.codes.Find(ctx, strings.TrimSpace(email), strings.TrimSpace(code))
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errInvalidCode
	}
	if time.Now().After(rec.ExpiresAt) {
		return "", errCodeExpired
	}

	token, err := jwt.Sign(rec.Email, SessionTTL)
	if err != nil {
		return "", err
	}
	if err := s.codes.DeleteByEmail(ctx, rec.Email); err != nil {
		return "", err
	}
	return token, nil
}

// generateCode draws a uniformly random 6-digit code from 100000-999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
