package postgres

import (
	"context"
	"testing"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Create(ctx, &entity.User{Username: "kept", Email: "kept@example.com", PasswordHash: "x"})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, &entity.User{Username: "lost", Email: "lost@example.com", PasswordHash: "x"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	users := NewUserRepository(db)
	_, err = users.FindByUsername(ctx, "kept")
	require.NoError(t, err)
	_, err = users.FindByUsername(ctx, "lost")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.NewTarifRepository().Create(ctx, &entity.Tarif{Name: "Ghost", Price: 100, Currency: "USD", Scope: "basic", Terms: "monthly"})
			panic("kaboom")
		})
	})

	tarifs, err := NewTarifRepository(db).List(ctx, entity.TarifFilter{})
	require.NoError(t, err)
	assert.Empty(t, tarifs)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, domainerrors.ErrUserNotFound, nil, ""))

	err := translateError(gorm.ErrRecordNotFound, domainerrors.ErrUserNotFound, nil, "user 1")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	err = translateError(gorm.ErrDuplicatedKey, domainerrors.ErrUserNotFound, domainerrors.ErrUsernameTaken, "")
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	err = translateError(gorm.ErrForeignKeyViolated, domainerrors.ErrTarifNotFound, nil, "tarif 1")
	assert.True(t, errors.Is(err, domainerrors.ErrReferentialIntegrity))

	err = translateError(gorm.ErrCheckConstraintViolated, domainerrors.ErrTarifNotFound, nil, "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = translateError(errors.New("connection reset"), domainerrors.ErrTarifNotFound, nil, "list")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}
