package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupVerificationCodePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS verification_codes (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		code VARCHAR(6) NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		is_used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestVerificationCodeRepository_SaveAndGetLatestActive(t *testing.T) {
	db, teardown := setupVerificationCodePostgresContainer(t)
	defer teardown()

	writeRepo := NewVerificationCodeWriteRepository(db, nil)
	readRepo := NewVerificationCodeReadRepository(db)
	ctx := context.Background()

	err := writeRepo.Save(ctx, "jane@example.com", "123456", time.Now().Add(10*time.Minute))
	assert.NoError(t, err)

	t.Run("MatchingCode", func(t *testing.T) {
		vc, err := readRepo.GetLatestActive(ctx, "jane@example.com", "123456")
		assert.NoError(t, err)
		assert.NotNil(t, vc)
		assert.Equal(t, "123456", vc.Code)
		assert.False(t, vc.IsUsed)
	})

	t.Run("WrongCode", func(t *testing.T) {
		vc, err := readRepo.GetLatestActive(ctx, "jane@example.com", "654321")
		assert.NoError(t, err)
		assert.Nil(t, vc)
	})

	t.Run("WrongEmail", func(t *testing.T) {
		vc, err := readRepo.GetLatestActive(ctx, "other@example.com", "123456")
		assert.NoError(t, err)
		assert.Nil(t, vc)
	})
}

func TestVerificationCodeRepository_ExpiredCodeRejected(t *testing.T) {
	db, teardown := setupVerificationCodePostgresContainer(t)
	defer teardown()

	writeRepo := NewVerificationCodeWriteRepository(db, nil)
	readRepo := NewVerificationCodeReadRepository(db)
	ctx := context.Background()

	err := writeRepo.Save(ctx, "jane@example.com", "123456", time.Now().Add(-time.Minute))
	assert.NoError(t, err)

	vc, err := readRepo.GetLatestActive(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	assert.Nil(t, vc)
}

func TestVerificationCodeRepository_UsedCodeRejected(t *testing.T) {
	db, teardown := setupVerificationCodePostgresContainer(t)
	defer teardown()

	writeRepo := NewVerificationCodeWriteRepository(db, nil)
	readRepo := NewVerificationCodeReadRepository(db)
	ctx := context.Background()

	err := writeRepo.Save(ctx, "jane@example.com", "123456", time.Now().Add(10*time.Minute))
	assert.NoError(t, err)

	vc, err := readRepo.GetLatestActive(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	assert.NotNil(t, vc)

	err = writeRepo.MarkUsed(ctx, vc.ID)
	assert.NoError(t, err)

	vc, err = readRepo.GetLatestActive(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	assert.Nil(t, vc)
}

func TestVerificationCodeRepository_NewestCodeWins(t *testing.T) {
	db, teardown := setupVerificationCodePostgresContainer(t)
	defer teardown()

	writeRepo := NewVerificationCodeWriteRepository(db, nil)
	readRepo := NewVerificationCodeReadRepository(db)
	ctx := context.Background()

	// Two outstanding codes with the same digits; forcing distinct
	// created_at values keeps the ordering deterministic.
	err := writeRepo.Save(ctx, "jane@example.com", "123456", time.Now().Add(10*time.Minute))
	assert.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO verification_codes (email, code, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, FALSE, NOW() + INTERVAL '1 second')
	`, "jane@example.com", "123456", time.Now().Add(10*time.Minute))
	assert.NoError(t, err)

	var ids []int64
	err = db.Select(&ids, "SELECT id FROM verification_codes ORDER BY created_at DESC")
	assert.NoError(t, err)
	assert.Len(t, ids, 2)

	vc, err := readRepo.GetLatestActive(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	assert.NotNil(t, vc)
	assert.Equal(t, ids[0], vc.ID)
}

func TestVerificationCodeRepository_MarkUsedTwice(t *testing.T) {
	db, teardown := setupVerificationCodePostgresContainer(t)
	defer teardown()

	writeRepo := NewVerificationCodeWriteRepository(db, nil)
	readRepo := NewVerificationCodeReadRepository(db)
	ctx := context.Background()

	err := writeRepo.Save(ctx, "jane@example.com", "123456", time.Now().Add(10*time.Minute))
	assert.NoError(t, err)

	vc, err := readRepo.GetLatestActive(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	assert.NotNil(t, vc)

	assert.NoError(t, writeRepo.MarkUsed(ctx, vc.ID))
	assert.NoError(t, writeRepo.MarkUsed(ctx, vc.ID))
}
