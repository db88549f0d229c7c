package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// AuthService owns self-service account flows: sign up, login, resolving a
// session token to a user and changing one's own password.
type AuthService struct {
	Store  store.Store
	Tokens *TokenIssuer
	Clock  Clock
}

// SignUp registers a regular user and signs them in.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (Session, error) {
	now := s.Clock.Now()
	u, err := newUser(in, domain.RoleUser, now)
	if err != nil {
		return Session{}, err
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return Session{}, err
	}
	slogx.FromContext(ctx).Info("user signed up", slog.String("user_id", u.ID.String()))
	return s.Tokens.session(u, now)
}

// Login checks an email and password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	l := slogx.FromContext(ctx)
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrMissingCredentials
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unreadable", slog.String("user_id", u.ID.String()), slog.Any("error", err))
		}
		return Session{}, ErrInvalidCredentials
	}

	if cryptox.NeedsRehash(u.PasswordHash) {
		if hash, err := cryptox.HashPassword(password); err == nil {
			if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash, nil); err != nil {
				l.Warn("password rehash failed", slog.String("user_id", u.ID.String()), slog.Any("error", err))
			} else {
				u.PasswordHash = hash
			}
		}
	}

	return s.Tokens.session(u, s.Clock.Now())
}

// Authenticate resolves verified session claims to the current user record.
func (s *AuthService) Authenticate(ctx context.Context, claims jwtx.Claims) (domain.User, error) {
	id, err := idx.Parse(claims.Subject)
	if err != nil {
		return domain.User{}, ErrUnauthenticated
	}
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserGone
	}
	if err != nil {
		return domain.User{}, err
	}
	if u.PasswordChangedSince(claims.IssuedAtTime()) {
		return domain.User{}, ErrStaleCredential
	}
	return u, nil
}

// UpdatePassword changes the caller's password after re-checking the old one
// and returns a fresh session. Tokens issued before the change stop working.
func (s *AuthService) UpdatePassword(ctx context.Context, user domain.User, in UpdatePasswordInput) (Session, error) {
	if err := domain.ValidatePassword(in.NewPassword, in.PasswordConfirm); err != nil {
		return Session{}, err
	}

	hash, err := cryptox.HashPassword(in.NewPassword)
	if err != nil {
		return Session{}, err
	}
	now := s.Clock.Now()
	stamp := domain.PasswordChangeStamp(now)

	// The old password is checked against the stored hash, not the copy
	// loaded with the request.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().GetUserByID(ctx, user.ID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserGone
		}
		if err != nil {
			return err
		}
		if cryptox.VerifyPassword(in.OldPassword, current.PasswordHash) != nil {
			return ErrWrongPassword
		}
		user = current
		return tx.Users().UpdatePasswordHash(ctx, user.ID, hash, &stamp)
	})
	if err != nil {
		return Session{}, err
	}

	user.PasswordHash = hash
	user.PasswordChangedAt = &stamp
	slogx.FromContext(ctx).Info("password updated", slog.String("user_id", user.ID.String()))
	return s.Tokens.session(user, now)
}

// newUser validates in and builds an unsaved user with the given role.
func newUser(in SignUpInput, role domain.Role, now time.Time) (domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if err := errors.Join(
		domain.ValidateName(in.Name),
		domain.ValidateEmail(email),
		domain.ValidatePassword(in.Password, in.PasswordConfirm),
	); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	photo := strings.TrimSpace(in.ProfilePhoto)
	if photo == "" {
		photo = domain.DefaultProfilePhoto
	}

	return domain.User{
		ID:           idx.NewAt(now),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		ProfilePhoto: photo,
		Tasks:        []idx.ID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
