package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestListingPostgresRepository_ApplyPromotion(t *testing.T) {
	t.Setenv("LISTINGS_TABLE", "")
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	updateSQL := regexp.QuoteMeta(`UPDATE "listings" SET`)

	t.Run("single update by id", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectExec(updateSQL).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), propertyID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewListingPostgresRepository(db)
		require.NoError(t, repo.ApplyPromotion(context.Background(), propertyID, promotedState(at)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows means missing listing", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewListingPostgresRepository(db)
		err := repo.ApplyPromotion(context.Background(), propertyID, promotedState(at))
		assert.ErrorIs(t, err, interfaces.ErrListingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newMockGorm(t)
		boom := errors.New("connection reset")
		mock.ExpectExec(updateSQL).WillReturnError(boom)

		repo := NewListingPostgresRepository(db)
		err := repo.ApplyPromotion(context.Background(), propertyID, promotedState(at))
		assert.ErrorIs(t, err, boom)
	})
}
