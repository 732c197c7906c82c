package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// SyncRequest carries the identity asserted by a validated token.
type SyncRequest struct {
	UserID      string `validate:"required"`
	Email       string `validate:"required,email"`
	DisplayName string
}

type UpdateUserRequest struct {
	Role   *domain.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN MANAGER USER"`
	Points *int         `json:"points,omitempty" validate:"omitempty,gte=0"`
}

// UsersPage is one page of users, newest first.
type UsersPage struct {
	Users      []domain.User `json:"users"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

const (
	DefaultUserPageSize = 10
	MaxUserPageSize     = 100
)

type IUserService interface {
	Sync(ctx context.Context, request SyncRequest) (domain.User, bool, error)
	Me(ctx context.Context, userID string) (domain.User, error)
	RequireAdmin(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, page, limit int) (UsersPage, error)
	UpdateUser(ctx context.Context, userID string, request UpdateUserRequest) (domain.User, error)
}

// UserService mirrors externally authenticated identities into the local store.
type UserService struct {
	log      *slog.Logger
	users    contract.IUserRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewUserService(log *slog.Logger, users contract.IUserRepository) *UserService {
	return &UserService{
		log:      log.With("component", "users"),
		users:    users,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Sync creates the user on first sight with the default balance.
// The boolean reports whether the record was created.
func (s *UserService) Sync(ctx context.Context, request SyncRequest) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, err
	}
	if err := s.validate.Struct(request); err != nil {
		return domain.User{}, false, fmt.Errorf("%w: email is required", errors.ErrInvalidInput)
	}
	displayName := request.DisplayName
	if displayName == "" {
		displayName = "User"
	}
	now := s.now().UTC()
	user := domain.User{
		ID:           request.UserID,
		Email:        request.Email,
		DisplayName:  displayName,
		Role:         domain.RoleUser,
		Points:       domain.DefaultPoints,
		ReupSettings: domain.ReupSettings{}.Effective(),
		CreatedAt:    now,
	}
	stored, created, err := s.users.CreateUser(user)
	if err != nil {
		return domain.User{}, false, err
	}
	if created {
		s.log.Info("User created", "userID", stored.ID)
	}
	return stored, created, nil
}

func (s *UserService) Me(ctx context.Context, userID string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	return s.users.GetUser(userID)
}

// RequireAdmin checks the stored role, the token alone is not trusted for it.
func (s *UserService) RequireAdmin(ctx context.Context, userID string) error {
	user, err := s.Me(ctx, userID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return fmt.Errorf("%w: admin access required", errors.ErrForbidden)
	}
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return fmt.Errorf("%w: admin access required", errors.ErrForbidden)
	}
	return nil
}

// ListUsers is 1-indexed, out of range values fall back to the defaults.
func (s *UserService) ListUsers(ctx context.Context, page, limit int) (UsersPage, error) {
	if err := ctx.Err(); err != nil {
		return UsersPage{}, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxUserPageSize {
		limit = DefaultUserPageSize
	}
	users, err := s.users.ListUsers()
	if err != nil {
		return UsersPage{}, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return UsersPage{
		Users:      append([]domain.User{}, lo.Slice(users, (page-1)*limit, page*limit)...),
		Total:      len(users),
		Page:       page,
		TotalPages: (len(users) + limit - 1) / limit,
	}, nil
}

// UpdateUser lets an admin change the role or reset the balance of a user.
func (s *UserService) UpdateUser(ctx context.Context, userID string, request UpdateUserRequest) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	if err := s.validate.Struct(request); err != nil {
		return domain.User{}, fmt.Errorf("%w: role must be ADMIN, MANAGER or USER and points non-negative",
			errors.ErrInvalidInput)
	}
	return s.users.UpdateUser(userID, func(user *domain.User) error {
		if request.Role != nil {
			user.Role = *request.Role
		}
		if request.Points != nil {
			user.Points = *request.Points
		}
		return nil
	})
}
