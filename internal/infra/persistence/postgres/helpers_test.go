package postgres

import (
	"context"
	"log/slog"
	"testing"

	"grainauth/config"
	"grainauth/internal/domain/entity"
	"grainauth/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the service schema.
// A single connection keeps every statement on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db = configureSession(db, slog.New(slog.DiscardHandler), &config.Config{})

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.TarifModel{},
		&model.SubscriptionModel{},
		&model.PaymentModel{},
		&model.ItemModel{},
		&model.ItemUserModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		PasswordHash: "$2a$04$hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedTarif(t *testing.T, db *gorm.DB, name string) *entity.Tarif {
	t.Helper()
	defaults := entity.DefaultTarifDefaults()
	tarif := &entity.Tarif{
		Name:     name,
		Price:    defaults.Price,
		Currency: defaults.Currency,
		Scope:    defaults.Scope,
		Terms:    defaults.Terms,
	}
	require.NoError(t, NewTarifRepository(db).Create(context.Background(), tarif))

	return tarif
}

func f64(v float64) *float64 { return &v }
