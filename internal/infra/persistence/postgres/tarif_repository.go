package postgres

import (
	"context"
	"strconv"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type tarifRepository struct {
	db *gorm.DB
}

// NewTarifRepository is the constructor for tarifRepository.
func NewTarifRepository(db *gorm.DB) repository.TarifRepository {
	return &tarifRepository{db: db}
}

// Create writes every column explicitly; defaults are resolved before this call.
func (repo *tarifRepository) Create(ctx context.Context, tarif *entity.Tarif) error {
	tarifM := fromTarifDomain(tarif)
	if err := repo.db.WithContext(ctx).Create(tarifM).Error; err != nil {
		return translateError(err, domainerrors.ErrTarifNotFound, nil, "failed to create tarif")
	}

	tarif.ID = tarifM.ID
	tarif.CreatedAt = tarifM.CreatedAt
	tarif.UpdatedAt = tarifM.UpdatedAt

	return nil
}

func (repo *tarifRepository) FindByID(ctx context.Context, id int64) (*entity.Tarif, error) {
	var tarifM model.TarifModel
	if err := repo.db.WithContext(ctx).First(&tarifM, id).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrTarifNotFound, nil, "tarif "+strconv.FormatInt(id, 10))
	}

	return toTarifDomain(&tarifM), nil
}

// List filters on the indexed scope and terms columns.
func (repo *tarifRepository) List(ctx context.Context, filter entity.TarifFilter) ([]*entity.Tarif, error) {
	query := repo.db.WithContext(ctx).Model(&model.TarifModel{})
	if filter.Scope != nil {
		query = query.Where("scope = ?", *filter.Scope)
	}
	if filter.Terms != nil {
		query = query.Where("terms = ?", *filter.Terms)
	}

	var models []model.TarifModel
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrTarifNotFound, nil, "failed to list tarifs")
	}

	tarifs := make([]*entity.Tarif, 0, len(models))
	for i := range models {
		tarifs = append(tarifs, toTarifDomain(&models[i]))
	}

	return tarifs, nil
}

// Update replaces every mutable column, zero values included.
func (repo *tarifRepository) Update(ctx context.Context, tarif *entity.Tarif) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TarifModel{ID: tarif.ID}).
		Select("name", "description", "price", "currency", "scope", "terms").
		Updates(fromTarifDomain(tarif))
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrTarifNotFound, nil, "failed to update tarif")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTarifNotFound.WithDetails("tarif " + strconv.FormatInt(tarif.ID, 10))
	}

	return nil
}

func (repo *tarifRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.TarifModel{}, id)
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrTarifNotFound, nil, "failed to delete tarif")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTarifNotFound.WithDetails("tarif " + strconv.FormatInt(id, 10))
	}

	return nil
}

func (repo *tarifRepository) CountDependents(ctx context.Context, id int64) (int64, error) {
	var total int64
	for _, table := range []any{&model.SubscriptionModel{}, &model.PaymentModel{}} {
		var n int64
		if err := repo.db.WithContext(ctx).Model(table).Where("tarif_id = ?", id).Count(&n).Error; err != nil {
			return 0, translateError(err, domainerrors.ErrTarifNotFound, nil, "failed to count tarif dependents")
		}
		total += n
	}

	return total, nil
}

func toTarifDomain(data *model.TarifModel) *entity.Tarif {
	return &entity.Tarif{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       entity.Money(data.Price),
		Currency:    data.Currency,
		Scope:       data.Scope,
		Terms:       data.Terms,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTarifDomain(data *entity.Tarif) *model.TarifModel {
	return &model.TarifModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       model.Money(data.Price),
		Currency:    data.Currency,
		Scope:       data.Scope,
		Terms:       data.Terms,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
