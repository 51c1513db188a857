package auth

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/mrigtrishna/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodeStore struct {
	records []models.AdminCodeModel
}

func (s *fakeCodeStore) Find(_ context.Context, email, code string) (*models.AdminCodeModel, error) {
	for i := range s.records {
		if s.records[i].Email == email && s.records[i].Code == code {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *fakeCodeStore) Insert(_ context.Context, rec *models.AdminCodeModel) error {
	s.records = append(s.records, *rec)
	return nil
}

func (s *fakeCodeStore) DeleteByEmail(_ context.Context, email string) error {
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.Email != email {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return nil
}

type fakeMailer struct {
	sentTo   []string
	sentCode []string
}

func (m *fakeMailer) SendOTP(to, code string) error {
	m.sentTo = append(m.sentTo, to)
	m.sentCode = append(m.sentCode, code)
	return nil
}

const adminEmail = "admin@example.com"

func TestSendRejectsUnknownEmail(t *testing.T) {
	store := &fakeCodeStore{}
	mailer := &fakeMailer{}
	svc := NewService(store, mailer, adminEmail)

	err := svc.Send(context.Background(), "stranger@example.com")
	assert.ErrorIs(t, err, errUnauthorizedEmail)
	assert.Empty(t, store.records)
	assert.Empty(t, mailer.sentTo)
}

func TestSendIsCaseInsensitiveAndTrimmed(t *testing.T) {
	store := &fakeCodeStore{}
	mailer := &fakeMailer{}
	svc := NewService(store, mailer, adminEmail)

	require.NoError(t, svc.Send(context.Background(), "  Admin@Example.COM "))
	require.Len(t, store.records, 1)
	assert.Equal(t, adminEmail, store.records[0].Email)
	assert.Equal(t, []string{adminEmail}, mailer.sentTo)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), mailer.sentCode[0])
}

func TestSendSupersedesPriorCode(t *testing.T) {
	store := &fakeCodeStore{}
	mailer := &fakeMailer{}
	svc := NewService(store, mailer, adminEmail)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, adminEmail))
	first := mailer.sentCode[0]
	require.NoError(t, svc.Send(ctx, adminEmail))
	second := mailer.sentCode[1]

	require.Len(t, store.records, 1, "only the newest code may remain")

	_, err := svc.Verify(ctx, adminEmail, first)
	if first != second {
		assert.ErrorIs(t, err, errInvalidCode)
	}

	token, err := svc.Verify(ctx, adminEmail, second)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestVerifySuccessPurgesCode(t *testing.T) {
	store := &fakeCodeStore{}
	mailer := &fakeMailer{}
	svc := NewService(store, mailer, adminEmail)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, adminEmail))
	code := mailer.sentCode[0]

	token, err := svc.Verify(ctx, adminEmail, code)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, store.records)

	// The code is single-use.
	_, err = svc.Verify(ctx, adminEmail, code)
	assert.ErrorIs(t, err, errInvalidCode)
}

func TestVerifyRejectsWrongCode(t *testing.T) {
	store := &fakeCodeStore{}
	svc := NewService(store, &fakeMailer{}, adminEmail)

	require.NoError(t, svc.Send(context.Background(), adminEmail))
	_, err := svc.Verify(context.Background(), adminEmail, "000000")
	assert.ErrorIs(t, err, errInvalidCode)
}

func TestVerifyRejectsExpiredCodeAndLeavesRecord(t *testing.T) {
	store := &fakeCodeStore{
		records: []models.AdminCodeModel{{
			Email:     adminEmail,
			Code:      "123456",
			ExpiresAt: time.Now().Add(-time.Second),
		}},
	}
	svc := NewService(store, &fakeMailer{}, adminEmail)

	_, err := svc.Verify(context.Background(), adminEmail, "123456")
	assert.ErrorIs(t, err, errCodeExpired)
	assert.Len(t, store.records, 1, "expired record stays until the next send")
}

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
