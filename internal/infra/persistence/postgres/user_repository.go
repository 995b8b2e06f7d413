// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	"campnav/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := findByID(ctx, repo.db, &userM, id, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user through the unique email index.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List returns users newest first, using the role index when a role is given.
func (repo *userRepository) List(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	if role != "" {
		query = query.Where("role = ?", role.String())
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return mapSlice(userModels, toUserDomain), nil
}

// Create persists a new user and fills in the generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	user.ID = id

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// Update applies a field-level patch to the user.
func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.UserPatch) error {
	err := updateColumns(ctx, repo.db, &model.UserModel{}, id, userPatchColumns(patch), repository.ErrUserNotFound)
	if err != nil && isUniqueConstraintViolation(err) {
		return repository.ErrUserEmailTaken
	}

	return err
}

// Delete removes the user. Records referencing the user keep their dangling reference.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.UserModel{}, id)
}

func userPatchColumns(patch *entity.UserPatch) map[string]any {
	columns := make(map[string]any)
	if patch == nil {
		return columns
	}

	setColumn(columns, "name", patch.Name)
	setColumn(columns, "email", patch.Email)
	setColumn(columns, "image", patch.Image)
	setColumn(columns, "password_hash", patch.PasswordHash)
	if patch.Role != nil {
		columns["role"] = patch.Role.String()
	}
	setNullableColumn(columns, "duration_start", patch.DurationStart)
	setNullableColumn(columns, "duration_end", patch.DurationEnd)
	setNullableColumn(columns, "is_on_site", patch.IsOnSite)
	setColumn(columns, "camp_staff_id", patch.CampStaffID)

	return columns
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Image:         data.Image,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		DurationStart: data.DurationStart,
		DurationEnd:   data.DurationEnd,
		IsOnSite:      data.IsOnSite,
		CampStaffID:   data.CampStaffID,
		CreatedAt:     data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Image:         data.Image,
		PasswordHash:  data.PasswordHash,
		Role:          data.Role.String(),
		DurationStart: data.DurationStart,
		DurationEnd:   data.DurationEnd,
		IsOnSite:      data.IsOnSite,
		CampStaffID:   data.CampStaffID,
		CreatedAt:     data.CreatedAt,
	}
}
