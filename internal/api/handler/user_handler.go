package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/waste-mgmt/internal/api/metrics"
	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// UserHandler handles HTTP requests for user signup, login, identity
// resolution, listing, and profile updates.
type UserHandler struct {
	service ports.AuthService
}

func NewUserHandler(service ports.AuthService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /user/signup.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userSignupRequest  true  "User registration details"
// @Success      200   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Router       /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req userSignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := h.service.SignupUser(c.Request().Context(), ports.SignupUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Gender:   req.Gender,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return err
	}
	metrics.SignupsTotal.WithLabelValues("user").Inc()

	return c.JSON(http.StatusOK, signupResponse{
		Message: "User created successfully",
		UserID:  userID,
	})
}

// Login handles POST /user/login.
//
// @Summary      Login with username and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userLoginRequest  true  "Login credentials"
// @Success      200   {object}  userLoginResponse
// @Failure      401   {object}  errorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req userLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.LoginUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("user", "failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()

	return c.JSON(http.StatusOK, userLoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		UserID:      result.UserID,
		Role:        result.Role,
	})
}

// Me handles GET /user/me: identity resolution for the presented token.
// The claims come from the verified token; the identifier is re-fetched
// so a record deleted after issuance yields 404.
//
// @Summary      Resolve the current user identity
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.ResolveUser(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		Sub:    claims.Subject,
		Role:   user.Role,
		Exp:    claims.ExpiresAt,
		UserID: user.ID,
	})
}

// List handles GET /user/users. The support-role gate is applied by the
// RBAC middleware on the route.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{
			UserID:   u.ID,
			Username: u.Username,
			Email:    u.Email,
			Gender:   u.Gender,
			Mobile:   u.Mobile,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Edit handles PUT /user/edit?username=<target>. Only fields present in
// the payload are applied.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  query     string             true  "Username of the record to update"
// @Param        body      body      userUpdateRequest  true  "Fields to update"
// @Success      200       {object}  userUpdateResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /user/edit [put]
func (h *UserHandler) Edit(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username query parameter is required")
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.UpdateUser(c.Request().Context(), claims, username, ports.UserUpdate{
		Password: req.Password,
		Email:    req.Email,
		Gender:   req.Gender,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userUpdateResponse{
		Message: result.Message,
		UserID:  result.UserID,
		Role:    result.Role,
	})
}
