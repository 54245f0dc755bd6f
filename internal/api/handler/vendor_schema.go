package handler

// --- Request / Response types: vendor endpoints ---

type vendorSignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Gender   string `json:"gender"   validate:"required"`
	Mobile   string `json:"mobile"   validate:"required"`
	Address  string `json:"address"  validate:"required"`
}

type vendorLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type vendorLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

type vendorMeResponse struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Gender  string `json:"gender"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

type vendorUpdateRequest struct {
	Password *string `json:"password" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Gender   *string `json:"gender"`
	Mobile   *string `json:"mobile"`
	Address  *string `json:"address"`
}

type vendorUpdateResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}
