package postgres

import (
	"context"
	"testing"
	"time"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarifRepository_CreateKeepsExplicitValues(t *testing.T) {
	db := newTestDB(t)
	repo := NewTarifRepository(db)
	ctx := context.Background()

	free := &entity.Tarif{Name: "Free", Price: 0, Currency: "EUR", Scope: "basic", Terms: "monthly"}
	require.NoError(t, repo.Create(ctx, free))

	got, err := repo.FindByID(ctx, free.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Money(0), got.Price)
	assert.Equal(t, "EUR", got.Currency)

	pro := seedTarif(t, db, "Pro")
	got, err = repo.FindByID(ctx, pro.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.00", got.Price.String())
	assert.Equal(t, "USD", got.Currency)
}

func TestTarifRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewTarifRepository(db)
	ctx := context.Background()

	for _, tarif := range []*entity.Tarif{
		{Name: "Basic monthly", Price: 1000, Currency: "USD", Scope: "basic", Terms: "monthly"},
		{Name: "Basic yearly", Price: 10000, Currency: "USD", Scope: "basic", Terms: "yearly"},
		{Name: "Pro monthly", Price: 2500, Currency: "USD", Scope: "pro", Terms: "monthly"},
	} {
		require.NoError(t, repo.Create(ctx, tarif))
	}

	basic, monthly := "basic", "monthly"

	all, err := repo.List(ctx, entity.TarifFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byScope, err := repo.List(ctx, entity.TarifFilter{Scope: &basic})
	require.NoError(t, err)
	assert.Len(t, byScope, 2)

	both, err := repo.List(ctx, entity.TarifFilter{Scope: &basic, Terms: &monthly})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Basic monthly", both[0].Name)
}

func TestTarifRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTarifRepository(db)
	ctx := context.Background()

	tarif := seedTarif(t, db, "Pro")
	tarif.Description = "Pro plan"
	tarif.Price = 0
	tarif.Terms = "yearly"
	require.NoError(t, repo.Update(ctx, tarif))

	got, err := repo.FindByID(ctx, tarif.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pro plan", got.Description)
	assert.Equal(t, entity.Money(0), got.Price)
	assert.Equal(t, "yearly", got.Terms)

	require.NoError(t, repo.Delete(ctx, tarif.ID))
	_, err = repo.FindByID(ctx, tarif.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrTarifNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, tarif.ID), domainerrors.ErrTarifNotFound))
}

func TestTarifRepository_CountDependents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "dave")
	tarif := seedTarif(t, db, "Pro")

	require.NoError(t, NewSubscriptionRepository(db).Create(ctx, &entity.Subscription{
		UserID: user.ID, TarifID: tarif.ID, StartDate: time.Now(), Status: entity.SubscriptionStatusActive,
	}))

	n, err := NewTarifRepository(db).CountDependents(ctx, tarif.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
