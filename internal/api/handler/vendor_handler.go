package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/waste-mgmt/internal/api/metrics"
	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// VendorHandler handles HTTP requests for vendor signup, login,
// identity resolution, and profile updates.
type VendorHandler struct {
	service ports.AuthService
}

func NewVendorHandler(service ports.AuthService) *VendorHandler {
	return &VendorHandler{service: service}
}

// Signup handles POST /vendor/signup.
//
// @Summary      Register a new vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body      vendorSignupRequest  true  "Vendor registration details"
// @Success      200   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Router       /vendor/signup [post]
func (h *VendorHandler) Signup(c echo.Context) error {
	var req vendorSignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vendorID, err := h.service.SignupVendor(c.Request().Context(), ports.SignupVendorInput{
		Name:     req.Name,
		Password: req.Password,
		Email:    req.Email,
		Gender:   req.Gender,
		Mobile:   req.Mobile,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}
	metrics.SignupsTotal.WithLabelValues("vendor").Inc()

	return c.JSON(http.StatusOK, signupResponse{
		Message: "Vendor created successfully",
		UserID:  vendorID,
	})
}

// Login handles POST /vendor/login. Vendors log in by email.
//
// @Summary      Login with email and password
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body      vendorLoginRequest  true  "Login credentials"
// @Success      200   {object}  vendorLoginResponse
// @Failure      401   {object}  errorResponse
// @Router       /vendor/login [post]
func (h *VendorHandler) Login(c echo.Context) error {
	var req vendorLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.LoginVendor(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("vendor", "failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("vendor", "success").Inc()

	return c.JSON(http.StatusOK, vendorLoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		UserID:      result.UserID,
		Name:        result.Name,
		Email:       result.Email,
		Role:        result.Role,
	})
}

// Me handles GET /vendor/me.
//
// @Summary      Resolve the current vendor identity
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  vendorMeResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /vendor/me [get]
func (h *VendorHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	vendor, err := h.service.ResolveVendor(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vendorMeResponse{
		UserID:  vendor.ID,
		Name:    vendor.Name,
		Email:   vendor.Email,
		Gender:  vendor.Gender,
		Mobile:  vendor.Mobile,
		Address: vendor.Address,
		Role:    vendor.Role,
	})
}

// Edit handles PUT /vendor/edit?email=<target>.
//
// @Summary      Update a vendor profile
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string               true  "Email of the record to update"
// @Param        body   body      vendorUpdateRequest  true  "Fields to update"
// @Success      200    {object}  vendorUpdateResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /vendor/edit [put]
func (h *VendorHandler) Edit(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req vendorUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.UpdateVendor(c.Request().Context(), claims, email, ports.VendorUpdate{
		Password: req.Password,
		Email:    req.Email,
		Gender:   req.Gender,
		Mobile:   req.Mobile,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vendorUpdateResponse{
		Message: result.Message,
		UserID:  result.UserID,
	})
}
