package domain

// Role values for the two principal kinds. Each kind has a default role
// assigned at signup and an elevated support role that may edit any
// record of that kind. RoleSupport is the generic support role accepted
// by the user-listing endpoint alongside RoleSupportUser.
const (
	RoleUser          = "user"
	RoleVendor        = "vendor"
	RoleSupport       = "support"
	RoleSupportUser   = "support_user"
	RoleSupportVendor = "support_vendor"
)

// User is an end-user principal. The username is its natural key: it is
// what the principal logs in with and what its token subjects carry.
type User struct {
	ID           string `json:"user_id"`
	Role         string `json:"role"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	Gender       string `json:"gender"`
	Mobile       string `json:"mobile"`
}

// Vendor is a vendor principal. Its natural key is the email; the name
// field plays the part the username plays for users.
type Vendor struct {
	ID           string `json:"user_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	Gender       string `json:"gender"`
	Mobile       string `json:"mobile"`
	Address      string `json:"address"`
}

// Claims is the verified content of a session token.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt int64 // unix seconds
}
