package postgres

import (
	"context"

	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) Exists(ctx context.Context, name entity.Role) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("name = ?", name.String()).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check role")
	}

	return count > 0, nil
}

// Create inserts the role unless it already exists. ON CONFLICT DO NOTHING keeps
// two registrations racing on a new role from failing each other.
func (repo *roleRepository) Create(ctx context.Context, name entity.Role) error {
	if !name.IsValid() {
		return domainerrors.ValidationError("role name is required")
	}

	roleM := &model.RoleModel{Name: name.String()}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(roleM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	return nil
}

// Assign links an existing role to the user. Assigning a role twice is a no-op.
func (repo *roleRepository) Assign(ctx context.Context, userID uuid.UUID, name entity.Role) error {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).Where("name = ?", name.String()).First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ValidationError("role " + name.String() + " does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load role")
	}

	assignment := &model.UserRoleModel{UserID: userID, RoleID: roleM.ID}
	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "role_id"}},
			DoNothing: true,
		}).
		Create(assignment).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

// RolesOf returns the user's roles ordered by assignment.
func (repo *roleRepository) RolesOf(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Model(&model.UserRoleModel{}).
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Order("user_roles.id ASC").
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user roles")
	}

	return entity.RolesFromStrings(names), nil
}
