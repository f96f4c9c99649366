package usecase

import (
	"context"

	"grainauth/internal/domain/entity"
)

// TarifInput is used for both create and full replacement. Nil fields take
// the configured defaults; an explicit zero price is kept.
type TarifInput struct {
	Name        string
	Description string
	Price       *entity.Money
	Currency    *string
	Scope       *string
	Terms       *string
}

// TarifUsecase manages the tarif catalog.
type TarifUsecase interface {
	CreateTarif(ctx context.Context, input *TarifInput) (*entity.Tarif, error)
	GetTarif(ctx context.Context, id int64) (*entity.Tarif, error)
	ListTarifs(ctx context.Context, filter entity.TarifFilter) ([]*entity.Tarif, error)
	UpdateTarif(ctx context.Context, id int64, input *TarifInput) (*entity.Tarif, error)
	// DeleteTarif fails with a referential integrity error while subscriptions or payments reference the tarif.
	DeleteTarif(ctx context.Context, id int64) error
}
