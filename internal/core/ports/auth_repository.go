package ports

import (
	"context"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

// UserRepository defines persistence operations for user principals.
//
// Insert must be atomic with respect to the uniqueness of username,
// email, and mobile: under concurrent colliding signups at most one
// contender succeeds and the rest fail with domain.ErrDuplicateKey.
// FindAny exists only to produce a friendly pre-insert error message;
// it is not the correctness mechanism.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindAny returns any user matching the username, email, OR mobile.
	FindAny(ctx context.Context, username, email, mobile string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}

// VendorRepository defines persistence operations for vendor principals.
// Same atomicity contract as UserRepository, over name/email/mobile.
type VendorRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Vendor, error)
	FindAny(ctx context.Context, name, email, mobile string) (*domain.Vendor, error)
	Insert(ctx context.Context, vendor *domain.Vendor) error
	Update(ctx context.Context, vendor *domain.Vendor) error
}
