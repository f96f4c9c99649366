package impl

import (
	"context"
	"strings"
	"testing"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestItemService(t *testing.T) (usecase.ItemUsecase, *serviceMocks) {
	m := newServiceMocks(t)

	return NewItemService(ItemServiceParams{
		TxManager:    m.txManager,
		ItemRepo:     m.itemRepo,
		ItemUserRepo: m.itemUserRepo,
		Logger:       m.logger,
	}), m
}

func coord(v float64) *float64 { return &v }

func TestItemService_CreateItem_LinksCreator(t *testing.T) {
	srv, m := createTestItemService(t)
	ctx := context.Background()

	m.expectTx()
	m.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(_ context.Context, item *entity.Item) {
			item.ID = 31
		}).
		Return(nil)
	m.itemUserRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(link *entity.ItemUser) bool {
			return link.ItemID == 31 && link.UserID == 3
		})).
		Return(nil)

	item, err := srv.CreateItem(ctx, 3, &usecase.ItemInput{
		Title:     " Statue ",
		Latitude:  coord(40.7128),
		Longitude: coord(-74.0060),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(31), item.ID)
	assert.Equal(t, "Statue", item.Title)
}

func TestItemService_CreateItem_InvalidCoordinates(t *testing.T) {
	srv, m := createTestItemService(t)
	ctx := context.Background()

	m.expectTx()
	m.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Return(domainerrors.ErrValidationFailed.WithDetails("latitude is required"))

	_, err := srv.CreateItem(ctx, 3, &usecase.ItemInput{Title: "Nowhere"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestItemService_CreateItem_TitleTooLong(t *testing.T) {
	srv, _ := createTestItemService(t)

	_, err := srv.CreateItem(context.Background(), 3, &usecase.ItemInput{Title: strings.Repeat("x", 256)})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestItemService_UpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("linked user", func(t *testing.T) {
		srv, m := createTestItemService(t)

		m.expectTx()
		m.itemRepo.EXPECT().FindByID(ctx, int64(31)).Return(&entity.Item{ID: 31, Title: "Old"}, nil)
		m.itemUserRepo.EXPECT().IsLinked(ctx, int64(3), int64(31)).Return(true, nil)
		m.itemRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(item *entity.Item) bool {
				return item.Title == "London" && *item.Latitude == 51.5074 && *item.Longitude == -0.1278
			})).
			Return(nil)

		item, err := srv.UpdateItem(ctx, 3, 31, &usecase.ItemInput{
			Title:     "London",
			Latitude:  coord(51.5074),
			Longitude: coord(-0.1278),
		})

		require.NoError(t, err)
		assert.Equal(t, "London", item.Title)
	})

	t.Run("unlinked user", func(t *testing.T) {
		srv, m := createTestItemService(t)

		m.expectTx()
		m.itemRepo.EXPECT().FindByID(ctx, int64(31)).Return(&entity.Item{ID: 31}, nil)
		m.itemUserRepo.EXPECT().IsLinked(ctx, int64(3), int64(31)).Return(false, nil)

		_, err := srv.UpdateItem(ctx, 3, 31, &usecase.ItemInput{Title: "London"})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing item", func(t *testing.T) {
		srv, m := createTestItemService(t)

		m.expectTx()
		m.itemRepo.EXPECT().FindByID(ctx, int64(31)).Return(nil, domainerrors.ErrItemNotFound)

		_, err := srv.UpdateItem(ctx, 3, 31, &usecase.ItemInput{Title: "London"})

		assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
	})
}

func TestItemService_LinkItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds link", func(t *testing.T) {
		srv, m := createTestItemService(t)

		m.expectTx()
		m.itemRepo.EXPECT().FindByID(ctx, int64(31)).Return(&entity.Item{ID: 31}, nil)
		m.itemUserRepo.EXPECT().Add(ctx, &entity.ItemUser{ItemID: 31, UserID: 3}).Return(nil)

		require.NoError(t, srv.LinkItem(ctx, 3, 31))
	})

	t.Run("missing item", func(t *testing.T) {
		srv, m := createTestItemService(t)

		m.expectTx()
		m.itemRepo.EXPECT().FindByID(ctx, int64(31)).Return(nil, domainerrors.ErrItemNotFound)

		err := srv.LinkItem(ctx, 3, 31)

		assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
	})
}

func TestItemService_ListUserItemIDs(t *testing.T) {
	srv, m := createTestItemService(t)
	ctx := context.Background()

	m.itemUserRepo.EXPECT().ListItemIDs(ctx, int64(3)).Return([]int64{31, 31, 40}, nil)

	ids, err := srv.ListUserItemIDs(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, []int64{31, 31, 40}, ids)
}

func TestItemService_RemoveUserItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes links and item", func(t *testing.T) {
		srv, m := createTestItemService(t)

		m.expectTx()
		m.itemRepo.EXPECT().FindByID(ctx, int64(31)).Return(&entity.Item{ID: 31}, nil)
		m.itemUserRepo.EXPECT().Remove(ctx, int64(3), int64(31)).Return(int64(2), nil)
		m.itemUserRepo.EXPECT().DeleteByItem(ctx, int64(31)).Return(nil)
		m.itemRepo.EXPECT().Delete(ctx, int64(31)).Return(nil)

		require.NoError(t, srv.RemoveUserItem(ctx, 3, 31))
	})

	t.Run("not linked", func(t *testing.T) {
		srv, m := createTestItemService(t)

		m.expectTx()
		m.itemRepo.EXPECT().FindByID(ctx, int64(31)).Return(&entity.Item{ID: 31}, nil)
		m.itemUserRepo.EXPECT().Remove(ctx, int64(3), int64(31)).Return(int64(0), nil)

		err := srv.RemoveUserItem(ctx, 3, 31)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}
