package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// AuthService implements signup, login, identity resolution, and the
// authorization guard for profile updates. It is stateless per request;
// all coordination is delegated to the stores' uniqueness constraints.
type AuthService struct {
	users   ports.UserRepository
	vendors ports.VendorRepository
	hasher  ports.PasswordHasher
	tokens  *TokenIssuer
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, vendors ports.VendorRepository, hasher ports.PasswordHasher, tokens *TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		vendors: vendors,
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger,
	}
}

// SignupUser registers a new user and returns its identifier. The
// FindAny pre-check yields the friendly duplicate error; the store's
// unique indexes are what actually guarantee at-most-one winner under
// concurrent colliding signups.
func (s *AuthService) SignupUser(ctx context.Context, in ports.SignupUserInput) (string, error) {
	if existing, err := s.users.FindAny(ctx, in.Username, in.Email, in.Mobile); err == nil && existing != nil {
		return "", domain.ErrDuplicateKey
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("signup collision check: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Role:         domain.RoleUser,
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		Gender:       in.Gender,
		Mobile:       in.Mobile,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info().Str("username", in.Username).Str("user_id", user.ID).Msg("user registered")
	return user.ID, nil
}

// LoginUser verifies credentials by username and issues a session
// token. An unknown username and a wrong password are indistinguishable
// to the caller.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	return &ports.LoginResult{AccessToken: token, UserID: user.ID, Role: user.Role}, nil
}

// ResolveUser maps an already-verified token subject back to the
// current user record, guarding against identifier drift since the
// token was minted.
func (s *AuthService) ResolveUser(ctx context.Context, subject string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, subject)
}

// ListUsers returns all user records. Access control (support role)
// is enforced at the routing layer.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// UpdateUser applies a partial update to the named user. Permitted when
// the actor is that user (self-service) or holds the elevated user
// role. Only non-nil fields are touched; passwords are re-hashed; role
// and identifier are never updatable through this path.
func (s *AuthService) UpdateUser(ctx context.Context, actor domain.Claims, username string, upd ports.UserUpdate) (*ports.UpdateResult, error) {
	isSelf := actor.Subject == username
	isSupport := actor.Role == domain.RoleSupportUser
	if !isSelf && !isSupport {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
	}
	if upd.Mobile != nil {
		user.Mobile = *upd.Mobile
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("actor", actor.Subject).Msg("user updated")
	return &ports.UpdateResult{
		UserID:  user.ID,
		Role:    user.Role,
		Message: fmt.Sprintf("User '%s' updated successfully", username),
	}, nil
}

// SignupVendor registers a new vendor and returns its identifier.
func (s *AuthService) SignupVendor(ctx context.Context, in ports.SignupVendorInput) (string, error) {
	if existing, err := s.vendors.FindAny(ctx, in.Name, in.Email, in.Mobile); err == nil && existing != nil {
		return "", domain.ErrDuplicateKey
	} else if err != nil && !errors.Is(err, domain.ErrVendorNotFound) {
		return "", fmt.Errorf("signup collision check: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	vendor := &domain.Vendor{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Role:         domain.RoleVendor,
		PasswordHash: hash,
		Email:        in.Email,
		Gender:       in.Gender,
		Mobile:       in.Mobile,
		Address:      in.Address,
	}
	if err := s.vendors.Insert(ctx, vendor); err != nil {
		return "", err
	}

	s.logger.Info().Str("name", in.Name).Str("user_id", vendor.ID).Msg("vendor registered")
	return vendor.ID, nil
}

// LoginVendor verifies credentials by email and issues a session token
// whose subject is the vendor's email.
func (s *AuthService) LoginVendor(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	vendor, err := s.vendors.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Check(password, vendor.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(vendor.Email, vendor.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("vendor logged in")
	return &ports.LoginResult{
		AccessToken: token,
		UserID:      vendor.ID,
		Role:        vendor.Role,
		Name:        vendor.Name,
		Email:       vendor.Email,
	}, nil
}

// ResolveVendor maps a verified token subject to the current vendor record.
func (s *AuthService) ResolveVendor(ctx context.Context, subject string) (*domain.Vendor, error) {
	return s.vendors.FindByEmail(ctx, subject)
}

// UpdateVendor applies a partial update to the vendor with the given
// email, under the self-or-support_vendor guard.
func (s *AuthService) UpdateVendor(ctx context.Context, actor domain.Claims, email string, upd ports.VendorUpdate) (*ports.UpdateResult, error) {
	isSelf := actor.Subject == email
	isSupport := actor.Role == domain.RoleSupportVendor
	if !isSelf && !isSupport {
		return nil, domain.ErrForbidden
	}

	vendor, err := s.vendors.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		vendor.PasswordHash = hash
	}
	if upd.Email != nil {
		vendor.Email = *upd.Email
	}
	if upd.Gender != nil {
		vendor.Gender = *upd.Gender
	}
	if upd.Mobile != nil {
		vendor.Mobile = *upd.Mobile
	}
	if upd.Address != nil {
		vendor.Address = *upd.Address
	}

	if err := s.vendors.Update(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("actor", actor.Subject).Msg("vendor updated")
	return &ports.UpdateResult{
		UserID:  vendor.ID,
		Role:    vendor.Role,
		Name:    vendor.Name,
		Message: fmt.Sprintf("Vendor '%s' updated successfully", vendor.Name),
	}, nil
}
