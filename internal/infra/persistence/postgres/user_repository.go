package postgres

import (
	"context"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/infra/persistence/model"
	"ecommerce/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// preloadRoles loads role assignments in assignment order.
func preloadRoles(db *gorm.DB) *gorm.DB {
	return db.Preload("UserRoles", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("user_roles.id ASC")
	}).Preload("UserRoles.Role")
}

// FindByID retrieves a single user with roles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := preloadRoles(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by normalized username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := preloadRoles(repo.db.WithContext(ctx)).
		Where("username_normalized = ?", util.Normalize(username)).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// ExistsByUsername reports whether the normalized username is taken.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username_normalized = ?", util.Normalize(username)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check username")
	}

	return count > 0, nil
}

// Create persists a new user. Roles are assigned separately through RoleRepository.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		userM.ID = id
	}

	if err := repo.db.WithContext(ctx).Omit("UserRoles").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ValidationError("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// List returns all users ordered by username.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := preloadRoles(repo.db.WithContext(ctx)).
		Order("username_normalized ASC").
		Find(&userMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	roles := make(entity.Roles, 0, len(data.UserRoles))
	for _, ur := range data.UserRoles {
		if ur.Role != nil {
			roles = append(roles, entity.Role(ur.Role.Name))
		}
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Roles:        roles,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		Username:           data.Username,
		UsernameNormalized: util.Normalize(data.Username),
		Name:               data.Name,
		PasswordHash:       data.PasswordHash,
	}
}
