package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"grainauth/config"
	deliverycontext "grainauth/internal/delivery/context"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxTarifPrice is the largest value a NUMERIC(10,2) column holds, in cents.
const maxTarifPrice entity.Money = 99_999_999_99

type tarifService struct {
	txManager repository.TransactionManager
	tarifRepo repository.TarifRepository
	defaults  entity.TarifDefaults
	logger    *slog.Logger
}

// TarifServiceParams holds dependencies for TarifService, injected by Fx.
type TarifServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TarifRepo repository.TarifRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTarifService resolves the configured tarif defaults once at startup.
func NewTarifService(params TarifServiceParams) (usecase.TarifUsecase, error) {
	defaults := entity.DefaultTarifDefaults()
	if params.Config != nil && params.Config.Tarif != nil {
		configured, err := params.Config.Tarif.Defaults()
		if err != nil {
			return nil, errors.Wrap(err, "invalid tarif defaults")
		}
		defaults = configured
	}

	return &tarifService{
		txManager: params.TxManager,
		tarifRepo: params.TarifRepo,
		defaults:  defaults,
		logger:    params.Logger,
	}, nil
}

func (srv *tarifService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// build applies defaults to omitted fields and validates the result.
func (srv *tarifService) build(input *usecase.TarifInput) (*entity.Tarif, error) {
	tarif := &entity.Tarif{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       srv.defaults.Price,
		Currency:    srv.defaults.Currency,
		Scope:       srv.defaults.Scope,
		Terms:       srv.defaults.Terms,
	}
	if input.Price != nil {
		tarif.Price = *input.Price
	}
	if input.Currency != nil {
		tarif.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.Scope != nil {
		tarif.Scope = strings.TrimSpace(*input.Scope)
	}
	if input.Terms != nil {
		tarif.Terms = strings.TrimSpace(*input.Terms)
	}

	switch {
	case tarif.Name == "" || utf8.RuneCountInString(tarif.Name) > 255:
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must be 1 to 255 characters")
	case tarif.Price < 0 || tarif.Price > maxTarifPrice:
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be between 0 and 99999999.99")
	case !isCurrencyCode(tarif.Currency):
		return nil, domainerrors.ErrValidationFailed.WithDetails("currency must be a three-letter code")
	case tarif.Scope == "" || len(tarif.Scope) > 50:
		return nil, domainerrors.ErrValidationFailed.WithDetails("scope must be 1 to 50 characters")
	case tarif.Terms == "" || len(tarif.Terms) > 50:
		return nil, domainerrors.ErrValidationFailed.WithDetails("terms must be 1 to 50 characters")
	}

	return tarif, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

func (srv *tarifService) CreateTarif(ctx context.Context, input *usecase.TarifInput) (*entity.Tarif, error) {
	tarif, err := srv.build(input)
	if err != nil {
		return nil, err
	}

	if err := srv.tarifRepo.Create(ctx, tarif); err != nil {
		return nil, errors.Wrap(err, "failed to create tarif")
	}

	srv.log(ctx).Info("Tarif created", slog.Int64("tarif_id", tarif.ID), slog.String("price", tarif.Price.String()))

	return tarif, nil
}

func (srv *tarifService) GetTarif(ctx context.Context, id int64) (*entity.Tarif, error) {
	tarif, err := srv.tarifRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tarif")
	}

	return tarif, nil
}

func (srv *tarifService) ListTarifs(ctx context.Context, filter entity.TarifFilter) ([]*entity.Tarif, error) {
	tarifs, err := srv.tarifRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tarifs")
	}

	return tarifs, nil
}

// UpdateTarif replaces every field; omitted ones fall back to the defaults again.
func (srv *tarifService) UpdateTarif(ctx context.Context, id int64, input *usecase.TarifInput) (*entity.Tarif, error) {
	tarif, err := srv.build(input)
	if err != nil {
		return nil, err
	}
	tarif.ID = id

	if err := srv.tarifRepo.Update(ctx, tarif); err != nil {
		return nil, errors.Wrap(err, "failed to update tarif")
	}

	updated, err := srv.tarifRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload tarif")
	}

	return updated, nil
}

func (srv *tarifService) DeleteTarif(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tarifRepo := repoFactory.NewTarifRepository()

		dependents, err := tarifRepo.CountDependents(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count tarif dependents")
		}
		if dependents > 0 {
			return domainerrors.ErrReferentialIntegrity.WithDetails("tarif is still referenced by subscriptions or payments")
		}

		return errors.Wrap(tarifRepo.Delete(ctx, id), "failed to delete tarif")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete tarif")
	}

	srv.log(ctx).Info("Tarif deleted", slog.Int64("tarif_id", id))

	return nil
}
