// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "campnav/internal/delivery/context"
	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	"campnav/internal/domain/service"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	enricher  *enricher
	logger    *slog.Logger
	now       func() time.Time
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		enricher:  newEnricher(userRepo, storage, logger),
		logger:    logger,
		now:       time.Now,
	}
}

// List returns users with their image resolved, filtered by role.
func (srv *userService) List(ctx context.Context, role string) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.List(ctx, entity.Role(entity.FilterValue(role, entity.FilterAll)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return enrichEach(ctx, users, srv.view), nil
}

// ListAll returns every user, newest first.
func (srv *userService) ListAll(ctx context.Context) ([]*usecase.UserView, error) {
	return srv.List(ctx, entity.FilterAll)
}

func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.view(ctx, user), nil
}

func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (uuid.UUID, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Creating user", slog.String("role", input.Role))

	user := &entity.User{Email: normalizeEmail(input.Email)}
	if err := srv.applyProfile(user, input); err != nil {
		return uuid.Nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return uuid.Nil, domainerrors.ErrUserAlreadyExists.WrapMessage("failed to create user")
		}

		return uuid.Nil, errors.Wrap(err, "failed to create user")
	}

	return user.ID, nil
}

// Upsert looks the user up by email inside one transaction. An existing user
// has its profile overwritten, keeping the stored password unless a new one
// is supplied; otherwise a new user is inserted.
func (srv *userService) Upsert(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserView, error) {
	email := normalizeEmail(input.Email)
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Upserting user", slog.String("role", input.Role))

	var stored *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		if existing == nil {
			user := &entity.User{Email: email}
			if err := srv.applyProfile(user, input); err != nil {
				return err
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			stored = user

			return nil
		}

		patch, err := srv.profilePatch(input)
		if err != nil {
			return err
		}
		if err := userRepo.Update(ctx, existing.ID, patch); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		stored, err = userRepo.FindByID(ctx, existing.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload user")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return srv.view(ctx, stored), nil
}

func (srv *userService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating user", slog.String("user_id", id.String()))

	patch := &entity.UserPatch{
		Name:          input.Name,
		Image:         input.Image,
		DurationStart: input.DurationStart,
		DurationEnd:   input.DurationEnd,
		IsOnSite:      input.IsOnSite,
		CampStaffID:   input.CampStaffID,
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		patch.Email = &email
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		patch.Role = &role
	}
	if input.Password != nil {
		hash, err := srv.hashPassword(*input.Password)
		if err != nil {
			return err
		}
		patch.PasswordHash = &hash
	}

	if err := srv.userRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("failed to update user")
		}

		return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to update user")
	}

	return nil
}

func (srv *userService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing user", slog.String("user_id", id.String()))

	return errors.Wrap(srv.userRepo.Delete(ctx, id), "failed to remove user")
}

// GetStats counts users per role and the visitors whose stay covers now, in one pass.
func (srv *userService) GetStats(ctx context.Context) (*usecase.UserStats, error) {
	users, err := srv.userRepo.List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	now := srv.now()
	counts := make(map[entity.Role]int, len(entity.AllRoles))
	active := 0
	for _, user := range users {
		counts[user.Role]++
		if user.IsActiveVisitor(now) {
			active++
		}
	}

	byRole := make([]usecase.RoleCount, 0, len(entity.AllRoles))
	for _, role := range entity.AllRoles {
		byRole = append(byRole, usecase.RoleCount{Name: role.DisplayName(), Value: counts[role]})
	}

	return &usecase.UserStats{
		ByRole:         byRole,
		ActiveVisitors: active,
		TotalUsers:     len(users),
	}, nil
}

// VerifyUser checks guest credentials. It returns nil when the user is
// unknown, has no password, or the password does not match.
func (srv *userService) VerifyUser(ctx context.Context, email, password string) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPassword() || !srv.hasher.Check(password, user.PasswordHash) {
		return nil, nil
	}

	return srv.view(ctx, user), nil
}

// applyProfile copies the profile fields of input onto a new user.
func (srv *userService) applyProfile(user *entity.User, input *usecase.CreateUserInput) error {
	user.Name = input.Name
	user.Image = input.Image
	user.Role = entity.Role(input.Role)
	user.DurationStart = input.DurationStart
	user.DurationEnd = input.DurationEnd
	user.IsOnSite = input.IsOnSite
	user.CampStaffID = input.CampStaffID

	if input.Password != nil {
		hash, err := srv.hashPassword(*input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	return nil
}

// profilePatch overwrites every profile field of an existing user. Omitted
// optional fields are cleared; the password only changes when supplied.
func (srv *userService) profilePatch(input *usecase.CreateUserInput) (*entity.UserPatch, error) {
	role := entity.Role(input.Role)
	patch := &entity.UserPatch{
		Name:          &input.Name,
		Image:         &input.Image,
		Role:          &role,
		DurationStart: entity.NewNullable(input.DurationStart),
		DurationEnd:   entity.NewNullable(input.DurationEnd),
		IsOnSite:      entity.NewNullable(input.IsOnSite),
		CampStaffID:   &input.CampStaffID,
	}

	if input.Password != nil {
		hash, err := srv.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	return patch, nil
}

func (srv *userService) hashPassword(password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

func (srv *userService) view(ctx context.Context, user *entity.User) *usecase.UserView {
	return &usecase.UserView{
		User:     user,
		ImageURL: srv.enricher.fileURL(ctx, user.Image),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
