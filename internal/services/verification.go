package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrCodeInvalidOrExpired   = errors.New("verification code invalid or expired")
)

// CodeReader defines read operations for verification codes.
type CodeReader interface {
	GetLatestActive(ctx context.Context, email, code string) (*models.VerificationCodeDB, error)
}

// CodeWriter defines write operations for verification codes.
type CodeWriter interface {
	Save(ctx context.Context, email, code string, expiresAt time.Time) error
	MarkUsed(ctx context.Context, codeID int64) error
}

// CodeSender delivers a verification code to an email address.
type CodeSender interface {
	SendCode(email, code string) error
}

// VerificationService issues and validates one-time email codes.
type VerificationService struct {
	users  UserReader
	reader CodeReader
	writer CodeWriter
	sender CodeSender
	ttl    time.Duration
}

// NewVerificationService creates a new VerificationService instance.
func NewVerificationService(users UserReader, reader CodeReader, writer CodeWriter, sender CodeSender, ttl time.Duration) *VerificationService {
	return &VerificationService{
		users:  users,
		reader: reader,
		writer: writer,
		sender: sender,
		ttl:    ttl,
	}
}

// RequestCode generates a fresh 6-digit code for the address, persists it
// and mails it out. Fails if the address already belongs to a user.
// Outstanding codes for the same address stay valid.
func (svc *VerificationService) RequestCode(ctx context.Context, email string) error {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return ErrEmailAlreadyRegistered
	}

	code, err := generateCode()
	if err != nil {
		logger.Log.Errorw("failed to generate verification code", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, email, code, time.Now().Add(svc.ttl)); err != nil {
		logger.Log.Errorw("failed to save verification code", "err", err)
		return err
	}

	if err := svc.sender.SendCode(email, code); err != nil {
		logger.Log.Errorw("failed to send verification code", "email", email, "err", err)
		return err
	}

	return nil
}

// ValidateCode checks the most recent matching code that is unused and not
// expired, and returns its id for later consumption.
func (svc *VerificationService) ValidateCode(ctx context.Context, email, code string) (int64, error) {
	vc, err := svc.reader.GetLatestActive(ctx, email, code)
	if err != nil {
		logger.Log.Errorw("failed to look up verification code", "err", err)
		return 0, err
	}
	if vc == nil {
		logger.Log.Errorw("verification code invalid or expired", "email", email)
		return 0, ErrCodeInvalidOrExpired
	}

	return vc.ID, nil
}

// ConsumeCode marks a validated code as used. Consuming twice has no effect.
func (svc *VerificationService) ConsumeCode(ctx context.Context, codeID int64) error {
	return svc.writer.MarkUsed(ctx, codeID)
}

// generateCode returns a uniformly random 6-digit numeric string,
// leading zeros allowed.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
