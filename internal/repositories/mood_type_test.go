package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSqlmockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestMoodTypeReadRepository_List(t *testing.T) {
	db, mock := newSqlmockDB(t)
	repo := NewMoodTypeReadRepository(db)
	ctx := context.Background()

	t.Run("success ordered by value", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "value"}).
			AddRow(1, "HAPPY", 5).
			AddRow(5, "SAD", 1)
		mock.ExpectQuery("SELECT id, name, value FROM mood_types").WillReturnRows(rows)

		types, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, types, 2)
		assert.Equal(t, "HAPPY", types[0].Name)
		assert.Equal(t, 5, types[0].Value)
		assert.Equal(t, "SAD", types[1].Name)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, value FROM mood_types").WillReturnError(assert.AnError)

		types, err := repo.List(ctx)
		assert.Error(t, err)
		assert.Empty(t, types)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodTypeReadRepository_GetByName(t *testing.T) {
	db, mock := newSqlmockDB(t)
	repo := NewMoodTypeReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "value"}).AddRow(1, "HAPPY", 5)
		mock.ExpectQuery("SELECT id, name, value FROM mood_types WHERE name").
			WithArgs("HAPPY").
			WillReturnRows(rows)

		mt, err := repo.GetByName(ctx, "HAPPY")
		assert.NoError(t, err)
		assert.NotNil(t, mt)
		assert.Equal(t, int64(1), mt.ID)
		assert.Equal(t, 5, mt.Value)
	})

	t.Run("unknown name yields nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, value FROM mood_types WHERE name").
			WithArgs("ANGRYYY").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "value"}))

		mt, err := repo.GetByName(ctx, "ANGRYYY")
		assert.NoError(t, err)
		assert.Nil(t, mt)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, value FROM mood_types WHERE name").
			WithArgs("HAPPY").
			WillReturnError(assert.AnError)

		mt, err := repo.GetByName(ctx, "HAPPY")
		assert.Error(t, err)
		assert.Nil(t, mt)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
