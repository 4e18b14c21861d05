package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
)

// VerificationCodeReadRepository handles verification code read operations
type VerificationCodeReadRepository struct {
	db *sqlx.DB
}

func NewVerificationCodeReadRepository(db *sqlx.DB) *VerificationCodeReadRepository {
	return &VerificationCodeReadRepository{db: db}
}

// GetLatestActive returns the most recently created matching code that is
// unused and not expired, or nil if none qualifies. Multiple outstanding
// codes per email may coexist; the newest wins.
func (r *VerificationCodeReadRepository) GetLatestActive(ctx context.Context, email, code string) (*models.VerificationCodeDB, error) {
	const query = `
		SELECT id, email, code, expires_at, is_used, created_at
		FROM verification_codes
		WHERE email = $1 AND code = $2 AND is_used = FALSE AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var vc models.VerificationCodeDB
	err := r.db.GetContext(ctx, &vc, query, email, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, code},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &vc, nil
}

// VerificationCodeWriteRepository handles verification code write operations
type VerificationCodeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVerificationCodeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VerificationCodeWriteRepository {
	return &VerificationCodeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new code row. Prior codes for the same email stay valid.
func (r *VerificationCodeWriteRepository) Save(ctx context.Context, email, code string, expiresAt time.Time) error {
	query := `
		INSERT INTO verification_codes (email, code, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
	`
	args := []any{email, code, expiresAt}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// MarkUsed consumes a code. Running it twice is harmless.
func (r *VerificationCodeWriteRepository) MarkUsed(ctx context.Context, codeID int64) error {
	query := `
		UPDATE verification_codes
		SET is_used = TRUE
		WHERE id = $1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, codeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{codeID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
