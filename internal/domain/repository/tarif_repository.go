package repository

import (
	"context"

	"grainauth/internal/domain/entity"
)

// TarifRepository persists the tarif catalog.
type TarifRepository interface {
	Create(ctx context.Context, tarif *entity.Tarif) error
	FindByID(ctx context.Context, id int64) (*entity.Tarif, error)
	List(ctx context.Context, filter entity.TarifFilter) ([]*entity.Tarif, error)
	Update(ctx context.Context, tarif *entity.Tarif) error
	Delete(ctx context.Context, id int64) error

	// CountDependents returns how many subscriptions and payments reference the tarif.
	CountDependents(ctx context.Context, id int64) (int64, error)
}
