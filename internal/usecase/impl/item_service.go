package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "grainauth/internal/delivery/context"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type itemService struct {
	txManager    repository.TransactionManager
	itemRepo     repository.ItemRepository
	itemUserRepo repository.ItemUserRepository
	logger       *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ItemRepo     repository.ItemRepository
	ItemUserRepo repository.ItemUserRepository
	Logger       *slog.Logger
}

// NewItemService creates a new item service instance
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		txManager:    params.TxManager,
		itemRepo:     params.ItemRepo,
		itemUserRepo: params.ItemUserRepo,
		logger:       params.Logger,
	}
}

func (s *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func validateItemTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) > 255 {
		return "", domainerrors.ErrValidationFailed.WithDetails("title must be at most 255 characters")
	}

	return title, nil
}

// CreateItem stores the item and links it to the user in one transaction.
func (s *itemService) CreateItem(ctx context.Context, userID int64, input *usecase.ItemInput) (*entity.Item, error) {
	title, err := validateItemTitle(input.Title)
	if err != nil {
		return nil, err
	}

	item := &entity.Item{
		Title:     title,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewItemRepository().Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create item")
		}

		link := &entity.ItemUser{ItemID: item.ID, UserID: userID}

		return errors.Wrap(repoFactory.NewItemUserRepository().Add(ctx, link), "failed to link item")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	s.log(ctx).Info("Item created", slog.Int64("item_id", item.ID), slog.Int64("user_id", userID))

	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (*entity.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}

	return item, nil
}

// UpdateItem rewrites title and coordinates; the location follows the coordinates.
func (s *itemService) UpdateItem(ctx context.Context, userID, id int64, input *usecase.ItemInput) (*entity.Item, error) {
	title, err := validateItemTitle(input.Title)
	if err != nil {
		return nil, err
	}

	var updated *entity.Item
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		item, err := itemRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find item")
		}
		if err := ensureLinked(ctx, repoFactory.NewItemUserRepository(), userID, id); err != nil {
			return err
		}

		item.Title = title
		item.Latitude = input.Latitude
		item.Longitude = input.Longitude
		if err := itemRepo.Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update item")
		}
		updated = item

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update item")
	}

	return updated, nil
}

func ensureLinked(ctx context.Context, links repository.ItemUserRepository, userID, itemID int64) error {
	linked, err := links.IsLinked(ctx, userID, itemID)
	if err != nil {
		return errors.Wrap(err, "failed to check item link")
	}
	if !linked {
		return domainerrors.ErrForbidden.WithDetails("item is not linked to the user")
	}

	return nil
}

// LinkItem adds one more link; repeated links for the same pair are kept.
func (s *itemService) LinkItem(ctx context.Context, userID, id int64) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewItemRepository().FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to find item")
		}

		link := &entity.ItemUser{ItemID: id, UserID: userID}

		return errors.Wrap(repoFactory.NewItemUserRepository().Add(ctx, link), "failed to link item")
	})
	if err != nil {
		return errors.Wrap(err, "failed to link item")
	}

	return nil
}

func (s *itemService) ListUserItemIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.itemUserRepo.ListItemIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user items")
	}

	return ids, nil
}

// RemoveUserItem drops the caller's links, then every remaining link, then the item itself.
func (s *itemService) RemoveUserItem(ctx context.Context, userID, id int64) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		links := repoFactory.NewItemUserRepository()

		if _, err := itemRepo.FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to find item")
		}

		removed, err := links.Remove(ctx, userID, id)
		if err != nil {
			return errors.Wrap(err, "failed to unlink item")
		}
		if removed == 0 {
			return domainerrors.ErrForbidden.WithDetails("item is not linked to the user")
		}

		if err := links.DeleteByItem(ctx, id); err != nil {
			return errors.Wrap(err, "failed to unlink item")
		}

		return errors.Wrap(itemRepo.Delete(ctx, id), "failed to delete item")
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove item")
	}

	s.log(ctx).Info("Item removed", slog.Int64("item_id", id), slog.Int64("user_id", userID))

	return nil
}
