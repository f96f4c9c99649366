package postgres

import (
	"context"
	"strconv"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateError(err, domainerrors.ErrUserNotFound, domainerrors.ErrUserAlreadyExists, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrUserNotFound, nil, "user "+strconv.FormatInt(id, 10))
	}

	return toUserDomain(&userM), nil
}

// FindByUsername reads from the primary so a login right after registration
// never misses the row on a lagging replica.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("username = ?", username).
		First(&userM).Error
	if err != nil {
		return nil, translateError(err, domainerrors.ErrUserNotFound, nil, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		return nil, translateError(err, domainerrors.ErrUserNotFound, nil, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var models []model.UserModel
	err := repo.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, translateError(err, domainerrors.ErrUserNotFound, nil, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users, nil
}

// Update writes the mutable columns. Username and id never change.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("email", "full_name", "hashed_password", "disabled").
		Updates(fromUserDomain(user))
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrUserNotFound, domainerrors.ErrEmailTaken, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound.WithDetails("user " + strconv.FormatInt(user.ID, 10))
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrUserNotFound, nil, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound.WithDetails("user " + strconv.FormatInt(id, 10))
	}

	return nil
}

func (repo *userRepository) CountDependents(ctx context.Context, id int64) (int64, error) {
	var total int64
	for _, table := range []any{&model.SubscriptionModel{}, &model.PaymentModel{}, &model.ItemUserModel{}} {
		var n int64
		if err := repo.db.WithContext(ctx).Model(table).Where("user_id = ?", id).Count(&n).Error; err != nil {
			return 0, translateError(err, domainerrors.ErrUserNotFound, nil, "failed to count user dependents")
		}
		total += n
	}

	return total, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		PasswordHash: data.HashedPassword,
		Disabled:     data.Disabled,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		FullName:       data.FullName,
		HashedPassword: data.PasswordHash,
		Disabled:       data.Disabled,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
