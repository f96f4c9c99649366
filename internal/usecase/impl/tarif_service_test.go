package impl

import (
	"context"
	"testing"

	"grainauth/config"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTarifService(t *testing.T, cfg *config.Config) (usecase.TarifUsecase, *serviceMocks) {
	m := newServiceMocks(t)

	srv, err := NewTarifService(TarifServiceParams{
		TxManager: m.txManager,
		TarifRepo: m.tarifRepo,
		Config:    cfg,
		Logger:    m.logger,
	})
	require.NoError(t, err)

	return srv, m
}

func strPtr(s string) *string { return &s }

func moneyPtr(m entity.Money) *entity.Money { return &m }

func TestTarifService_CreateTarif_AppliesDefaults(t *testing.T) {
	srv, m := createTestTarifService(t, newTestConfig())
	ctx := context.Background()

	m.tarifRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tarif")).
		Run(func(_ context.Context, tarif *entity.Tarif) {
			tarif.ID = 1
		}).
		Return(nil)

	tarif, err := srv.CreateTarif(ctx, &usecase.TarifInput{Name: "Starter"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), tarif.ID)
	assert.Equal(t, entity.MustParseMoney("10.00"), tarif.Price)
	assert.Equal(t, "USD", tarif.Currency)
	assert.Equal(t, "basic", tarif.Scope)
	assert.Equal(t, "monthly", tarif.Terms)
}

func TestTarifService_CreateTarif_ConfiguredDefaults(t *testing.T) {
	cfg := newTestConfig()
	cfg.Tarif = &config.TarifConfig{
		DefaultPrice:    "4.99",
		DefaultCurrency: "eur",
		DefaultScope:    "pro",
		DefaultTerms:    "yearly",
	}
	srv, m := createTestTarifService(t, cfg)
	ctx := context.Background()

	m.tarifRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Tarif")).Return(nil)

	tarif, err := srv.CreateTarif(ctx, &usecase.TarifInput{Name: "Pro"})

	require.NoError(t, err)
	assert.Equal(t, entity.Money(499), tarif.Price)
	assert.Equal(t, "EUR", tarif.Currency)
	assert.Equal(t, "pro", tarif.Scope)
	assert.Equal(t, "yearly", tarif.Terms)
}

func TestTarifService_CreateTarif_ExplicitValues(t *testing.T) {
	srv, m := createTestTarifService(t, newTestConfig())
	ctx := context.Background()

	m.tarifRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Tarif")).Return(nil)

	tarif, err := srv.CreateTarif(ctx, &usecase.TarifInput{
		Name:     "Free",
		Price:    moneyPtr(0),
		Currency: strPtr("gbp"),
		Terms:    strPtr("weekly"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.Money(0), tarif.Price)
	assert.Equal(t, "GBP", tarif.Currency)
	assert.Equal(t, "weekly", tarif.Terms)
	assert.Equal(t, "basic", tarif.Scope)
}

func TestTarifService_CreateTarif_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.TarifInput
	}{
		{name: "blank name", input: usecase.TarifInput{Name: "  "}},
		{name: "negative price", input: usecase.TarifInput{Name: "X", Price: moneyPtr(-1)}},
		{name: "price overflow", input: usecase.TarifInput{Name: "X", Price: moneyPtr(maxTarifPrice + 1)}},
		{name: "long currency", input: usecase.TarifInput{Name: "X", Currency: strPtr("EURO")}},
		{name: "non letter currency", input: usecase.TarifInput{Name: "X", Currency: strPtr("U5D")}},
		{name: "empty terms", input: usecase.TarifInput{Name: "X", Terms: strPtr("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := createTestTarifService(t, newTestConfig())

			_, err := srv.CreateTarif(context.Background(), &tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestTarifService_UpdateTarif_ReloadsRow(t *testing.T) {
	srv, m := createTestTarifService(t, newTestConfig())
	ctx := context.Background()
	stored := &entity.Tarif{ID: 5, Name: "Renamed", Price: 1500, Currency: "USD", Scope: "basic", Terms: "monthly"}

	m.tarifRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(tarif *entity.Tarif) bool {
			return tarif.ID == 5 && tarif.Name == "Renamed" && tarif.Price == 1500
		})).
		Return(nil)
	m.tarifRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)

	tarif, err := srv.UpdateTarif(ctx, 5, &usecase.TarifInput{Name: "Renamed", Price: moneyPtr(1500)})

	require.NoError(t, err)
	assert.Equal(t, stored, tarif)
}

func TestTarifService_UpdateTarif_NotFound(t *testing.T) {
	srv, m := createTestTarifService(t, newTestConfig())
	ctx := context.Background()

	m.tarifRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Tarif")).Return(domainerrors.ErrTarifNotFound)

	_, err := srv.UpdateTarif(ctx, 5, &usecase.TarifInput{Name: "Renamed"})

	assert.True(t, errors.Is(err, domainerrors.ErrTarifNotFound))
}

func TestTarifService_ListTarifs_PassesFilter(t *testing.T) {
	srv, m := createTestTarifService(t, newTestConfig())
	ctx := context.Background()
	filter := entity.TarifFilter{Scope: strPtr("basic")}

	m.tarifRepo.EXPECT().List(ctx, filter).Return([]*entity.Tarif{{ID: 1}}, nil)

	tarifs, err := srv.ListTarifs(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, tarifs, 1)
}

func TestTarifService_DeleteTarif(t *testing.T) {
	ctx := context.Background()

	t.Run("unreferenced", func(t *testing.T) {
		srv, m := createTestTarifService(t, newTestConfig())

		m.expectTx()
		m.tarifRepo.EXPECT().CountDependents(ctx, int64(5)).Return(int64(0), nil)
		m.tarifRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

		require.NoError(t, srv.DeleteTarif(ctx, 5))
	})

	t.Run("referenced", func(t *testing.T) {
		srv, m := createTestTarifService(t, newTestConfig())

		m.expectTx()
		m.tarifRepo.EXPECT().CountDependents(ctx, int64(5)).Return(int64(1), nil)

		err := srv.DeleteTarif(ctx, 5)

		assert.True(t, errors.Is(err, domainerrors.ErrReferentialIntegrity))
	})

	t.Run("missing", func(t *testing.T) {
		srv, m := createTestTarifService(t, newTestConfig())

		m.expectTx()
		m.tarifRepo.EXPECT().CountDependents(ctx, int64(5)).Return(int64(0), nil)
		m.tarifRepo.EXPECT().Delete(ctx, int64(5)).Return(domainerrors.ErrTarifNotFound)

		err := srv.DeleteTarif(ctx, 5)

		assert.True(t, errors.Is(err, domainerrors.ErrTarifNotFound))
	})
}

func TestNewTarifService_InvalidConfiguredPrice(t *testing.T) {
	cfg := newTestConfig()
	cfg.Tarif = &config.TarifConfig{DefaultPrice: "ten"}

	_, err := NewTarifService(TarifServiceParams{Config: cfg, Logger: newDiscardLogger()})

	require.Error(t, err)
}
