package ports

import (
	"context"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

// SignupUserInput carries a new user registration.
type SignupUserInput struct {
	Username string
	Password string
	Email    string
	Gender   string
	Mobile   string
}

// SignupVendorInput carries a new vendor registration.
type SignupVendorInput struct {
	Name     string
	Password string
	Email    string
	Gender   string
	Mobile   string
	Address  string
}

// LoginResult is returned on a successful login of either kind.
type LoginResult struct {
	AccessToken string
	UserID      string
	Role        string
	Name        string // vendors only
	Email       string // vendors only
}

// UserUpdate is a tri-state partial update: nil means "leave untouched",
// a non-nil pointer means "set to this value". An empty string is a
// deliberate value, not an omission.
type UserUpdate struct {
	Password *string
	Email    *string
	Gender   *string
	Mobile   *string
}

// VendorUpdate mirrors UserUpdate for vendor records.
type VendorUpdate struct {
	Password *string
	Email    *string
	Gender   *string
	Mobile   *string
	Address  *string
}

// UpdateResult reports the outcome of a permitted profile update.
type UpdateResult struct {
	UserID  string
	Role    string
	Name    string // vendors only
	Message string
}

// AuthService orchestrates signup, login, identity resolution, and
// guarded profile updates for both principal kinds.
type AuthService interface {
	SignupUser(ctx context.Context, in SignupUserInput) (string, error)
	LoginUser(ctx context.Context, username, password string) (*LoginResult, error)
	// ResolveUser re-fetches the principal behind an already-verified
	// token subject; ErrUserNotFound if the record no longer exists.
	ResolveUser(ctx context.Context, subject string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// UpdateUser applies a partial update to the user with the given
	// username, provided actor is that user or holds an elevated role.
	UpdateUser(ctx context.Context, actor domain.Claims, username string, upd UserUpdate) (*UpdateResult, error)

	SignupVendor(ctx context.Context, in SignupVendorInput) (string, error)
	LoginVendor(ctx context.Context, email, password string) (*LoginResult, error)
	ResolveVendor(ctx context.Context, subject string) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, actor domain.Claims, email string, upd VendorUpdate) (*UpdateResult, error)
}
