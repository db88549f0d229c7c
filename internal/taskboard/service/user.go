package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// UserService is the administrative view over user accounts.
type UserService struct {
	Store  store.Store
	Tokens *TokenIssuer
	Clock  Clock
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id idx.ID) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// Create registers a regular user on someone else's behalf. The returned
// session belongs to the new user.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (Session, error) {
	return s.create(ctx, in, domain.RoleUser)
}

func (s *UserService) create(ctx context.Context, in CreateUserInput, role domain.Role) (Session, error) {
	now := s.Clock.Now()
	u, err := newUser(in, role, now)
	if err != nil {
		return Session{}, err
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return Session{}, err
	}
	slogx.FromContext(ctx).Info("user created",
		slog.String("user_id", u.ID.String()),
		slog.String("role", string(u.Role)),
	)
	return s.Tokens.session(u, now)
}

// Update patches a user's profile and reissues their token.
func (s *UserService) Update(ctx context.Context, id idx.ID, in UpdateUserInput) (Session, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return Session{}, err
	}

	var errs []error
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
		errs = append(errs, domain.ValidateName(u.Name))
	}
	if in.Email != nil {
		u.Email = domain.NormalizeEmail(*in.Email)
		errs = append(errs, domain.ValidateEmail(u.Email))
	}
	if in.ProfilePhoto != nil {
		u.ProfilePhoto = strings.TrimSpace(*in.ProfilePhoto)
		if u.ProfilePhoto == "" {
			u.ProfilePhoto = domain.DefaultProfilePhoto
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Session{}, err
	}

	now := s.Clock.Now()
	u.UpdatedAt = now
	if err := s.Store.Users().UpdateUserProfile(ctx, u); err != nil {
		return Session{}, err
	}
	return s.Tokens.session(u, now)
}

// Delete removes a user together with their tasks.
func (s *UserService) Delete(ctx context.Context, id idx.ID) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("user deleted", slog.String("user_id", id.String()))
	return nil
}

// AdminService creates administrator accounts. Everything else about admins
// goes through UserService.
type AdminService struct {
	Users *UserService
}

func (s *AdminService) Create(ctx context.Context, in CreateUserInput) (Session, error) {
	return s.Users.create(ctx, in, domain.RoleAdmin)
}
