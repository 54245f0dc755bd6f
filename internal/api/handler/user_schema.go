package handler

// --- Request / Response types: user endpoints ---

type userSignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Gender   string `json:"gender"   validate:"required"`
	Mobile   string `json:"mobile"   validate:"required"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type userLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

type meResponse struct {
	Sub    string `json:"sub"`
	Role   string `json:"role"`
	Exp    int64  `json:"exp"`
	UserID string `json:"user_id"`
}

type userResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Mobile   string `json:"mobile"`
}

// userUpdateRequest distinguishes "absent" from "set to empty": a nil
// pointer leaves the stored value untouched.
type userUpdateRequest struct {
	Password *string `json:"password" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Gender   *string `json:"gender"`
	Mobile   *string `json:"mobile"`
}

type userUpdateResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}
