package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"grainauth/config"
	"grainauth/internal/domain/entity"
	"grainauth/internal/domain/repository"
	mockRepo "grainauth/internal/mocks/repository"
	mockSvc "grainauth/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

// serviceMocks holds every mocked dependency a service can ask for. The
// factory hands out the same repository mocks inside transactions.
type serviceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	tarifRepo        *mockRepo.MockTarifRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	paymentRepo      *mockRepo.MockPaymentRepository
	itemRepo         *mockRepo.MockItemRepository
	itemUserRepo     *mockRepo.MockItemUserRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	denylist         *mockSvc.MockTokenDenylist
	publisher        *mockSvc.MockEventPublisher
	logger           *slog.Logger
}

func newServiceMocks(t *testing.T) *serviceMocks {
	m := &serviceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		tarifRepo:        mockRepo.NewMockTarifRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		paymentRepo:      mockRepo.NewMockPaymentRepository(t),
		itemRepo:         mockRepo.NewMockItemRepository(t),
		itemUserRepo:     mockRepo.NewMockItemUserRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		denylist:         mockSvc.NewMockTokenDenylist(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		logger:           newDiscardLogger(),
	}

	m.factory.EXPECT().NewUserRepository().Return(m.userRepo).Maybe()
	m.factory.EXPECT().NewTarifRepository().Return(m.tarifRepo).Maybe()
	m.factory.EXPECT().NewSubscriptionRepository().Return(m.subscriptionRepo).Maybe()
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo).Maybe()
	m.factory.EXPECT().NewItemRepository().Return(m.itemRepo).Maybe()
	m.factory.EXPECT().NewItemUserRepository().Return(m.itemUserRepo).Maybe()

	return m
}

// expectTx runs the transaction body once against the mocked factory and
// returns whatever the body returns.
func (m *serviceMocks) expectTx() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Once()
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.DefaultPageSize = 20

	return cfg
}

func activeUser(id int64) *entity.User {
	return &entity.User{
		ID:           id,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
