package postgres

import (
	"context"
	"strconv"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/geo"
	"grainauth/internal/domain/repository"
	"grainauth/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// prepareItemWrite derives the stored location from the coordinates. Every
// insert and update goes through it, so location and coordinates are written
// by the same statement.
func prepareItemWrite(item *entity.Item) (*model.ItemModel, error) {
	point, err := geo.Point(item.Latitude, item.Longitude)
	if err != nil {
		return nil, err
	}
	item.Location = point

	return &model.ItemModel{
		ID:        item.ID,
		Title:     item.Title,
		Latitude:  *item.Latitude,
		Longitude: *item.Longitude,
		Location:  model.NewPoint(point),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, nil
}

func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM, err := prepareItemWrite(item)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return translateError(err, domainerrors.ErrItemNotFound, nil, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	var itemM model.ItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, id).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrItemNotFound, nil, "item "+strconv.FormatInt(id, 10))
	}

	return toItemDomain(&itemM), nil
}

func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM, err := prepareItemWrite(item)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{ID: item.ID}).
		Select("title", "latitude", "longitude", "location").
		Updates(itemM)
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrItemNotFound, nil, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound.WithDetails("item " + strconv.FormatInt(item.ID, 10))
	}

	return nil
}

func (repo *itemRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ItemModel{}, id)
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrItemNotFound, nil, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound.WithDetails("item " + strconv.FormatInt(id, 10))
	}

	return nil
}

func toItemDomain(data *model.ItemModel) *entity.Item {
	lat, lon := data.Latitude, data.Longitude

	return &entity.Item{
		ID:        data.ID,
		Title:     data.Title,
		Latitude:  &lat,
		Longitude: &lon,
		Location:  data.Location.Point,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

type itemUserRepository struct {
	db *gorm.DB
}

// NewItemUserRepository is the constructor for itemUserRepository.
func NewItemUserRepository(db *gorm.DB) repository.ItemUserRepository {
	return &itemUserRepository{db: db}
}

func (repo *itemUserRepository) Add(ctx context.Context, link *entity.ItemUser) error {
	linkM := &model.ItemUserModel{
		ItemID:    link.ItemID,
		UserID:    link.UserID,
		CreatedAt: link.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		return translateError(err, domainerrors.ErrItemNotFound, nil, "failed to link item to user")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

func (repo *itemUserRepository) Remove(ctx context.Context, userID, itemID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.ItemUserModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, domainerrors.ErrItemNotFound, nil, "failed to unlink item")
	}

	return result.RowsAffected, nil
}

func (repo *itemUserRepository) ListItemIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := repo.db.WithContext(ctx).
		Model(&model.ItemUserModel{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, translateError(err, domainerrors.ErrItemNotFound, nil, "failed to list user items")
	}

	return ids, nil
}

func (repo *itemUserRepository) IsLinked(ctx context.Context, userID, itemID int64) (bool, error) {
	var n int64
	err := repo.db.WithContext(ctx).
		Model(&model.ItemUserModel{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&n).Error
	if err != nil {
		return false, translateError(err, domainerrors.ErrItemNotFound, nil, "failed to check item link")
	}

	return n > 0, nil
}

func (repo *itemUserRepository) DeleteByItem(ctx context.Context, itemID int64) error {
	err := repo.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&model.ItemUserModel{}).Error
	if err != nil {
		return translateError(err, domainerrors.ErrItemNotFound, nil, "failed to unlink item")
	}

	return nil
}
