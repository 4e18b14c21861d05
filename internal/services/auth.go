package services

import (
	"context"
	"errors"
	"strings"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrMissingFields      = errors.New("email, password and code are required")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, password string) (int64, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// CodeValidator validates and consumes one-time verification codes.
type CodeValidator interface {
	ValidateCode(ctx context.Context, email, code string) (int64, error)
	ConsumeCode(ctx context.Context, codeID int64) error
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
}

// AuthService handles registration, login and profile reads.
type AuthService struct {
	reader UserReader
	writer UserWriter
	codes  CodeValidator
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, codes CodeValidator, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		codes:  codes,
		jwt:    jwt,
	}
}

// Register creates a user after validating the email verification code and
// consumes that code. Both writes share the request transaction, so a
// failure on either side rolls back the other. Returns the final username
// (the email local part when none was supplied).
func (svc *AuthService) Register(ctx context.Context, email, password, code, username string) (string, error) {
	if email == "" || password == "" || code == "" {
		return "", ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if user != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return "", ErrEmailAlreadyRegistered
	}

	codeID, err := svc.codes.ValidateCode(ctx, email, code)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	finalUsername := username
	if finalUsername == "" {
		finalUsername = strings.SplitN(email, "@", 2)[0]
	}

	if _, err := svc.writer.Save(ctx, email, finalUsername, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	if err := svc.codes.ConsumeCode(ctx, codeID); err != nil {
		logger.Log.Errorw("failed to consume verification code", "err", err)
		return "", err
	}

	return finalUsername, nil
}

// Login authenticates a user and returns a session token plus the user row.
// The last_login stamp is updated asynchronously and never fails the login.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	go func(userID int64) {
		if err := svc.writer.UpdateLastLogin(context.Background(), userID); err != nil {
			logger.Log.Errorw("failed to update last_login", "userID", userID, "err", err)
		}
	}(user.ID)

	return token, user, nil
}

// GetProfile returns the user row for an authenticated user id.
func (svc *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}
