package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

func TestVendorHandler_Signup(t *testing.T) {
	svc := &stubAuthService{t: t, signupVendor: func(in ports.SignupVendorInput) (string, error) {
		if in.Name != "Acme Scrap" || in.Address != "12 Yard Lane" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return "v-1", nil
	}}
	h := NewVendorHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/vendor/signup",
		`{"name":"Acme Scrap","password":"pw","email":"acme@x.com","gender":"M","mobile":"5557777","address":"12 Yard Lane"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	var resp signupResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "Vendor created successfully" || resp.UserID != "v-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVendorHandler_Signup_MissingAddress(t *testing.T) {
	h := NewVendorHandler(&stubAuthService{t: t})

	c, _ := newTestContext(http.MethodPost, "/vendor/signup",
		`{"name":"Acme Scrap","password":"pw","email":"acme@x.com","gender":"M","mobile":"5557777"}`)
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without address, got %v", err)
	}
}

func TestVendorHandler_Login(t *testing.T) {
	svc := &stubAuthService{t: t, loginVendor: func(email, password string) (*ports.LoginResult, error) {
		if email != "acme@x.com" || password != "pw" {
			t.Fatalf("unexpected credentials: %s/%s", email, password)
		}
		return &ports.LoginResult{
			AccessToken: "tok-1",
			UserID:      "v-1",
			Role:        domain.RoleVendor,
			Name:        "Acme Scrap",
			Email:       "acme@x.com",
		}, nil
	}}
	h := NewVendorHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/vendor/login", `{"email":"acme@x.com","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var resp vendorLoginResponse
	decodeBody(t, rec, &resp)
	if resp.AccessToken != "tok-1" || resp.TokenType != "bearer" || resp.Role != domain.RoleVendor {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Name != "Acme Scrap" || resp.Email != "acme@x.com" {
		t.Fatalf("profile fields missing: %+v", resp)
	}
}

func TestVendorHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{t: t, loginVendor: func(string, string) (*ports.LoginResult, error) {
		return nil, domain.ErrInvalidCredentials
	}}
	h := NewVendorHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/vendor/login", `{"email":"acme@x.com","password":"bad"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVendorHandler_Me(t *testing.T) {
	svc := &stubAuthService{t: t, resolveVend: func(subject string) (*domain.Vendor, error) {
		if subject != "acme@x.com" {
			t.Fatalf("unexpected subject %q", subject)
		}
		return &domain.Vendor{
			ID:      "v-1",
			Role:    domain.RoleVendor,
			Name:    "Acme Scrap",
			Email:   "acme@x.com",
			Gender:  "M",
			Mobile:  "5557777",
			Address: "12 Yard Lane",
		}, nil
	}}
	h := NewVendorHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/vendor/me", "")
	setClaims(c, domain.Claims{Subject: "acme@x.com", Role: domain.RoleVendor})
	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}

	var resp vendorMeResponse
	decodeBody(t, rec, &resp)
	if resp.UserID != "v-1" || resp.Name != "Acme Scrap" || resp.Address != "12 Yard Lane" || resp.Role != domain.RoleVendor {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVendorHandler_Edit(t *testing.T) {
	svc := &stubAuthService{t: t, updateVendor: func(actor domain.Claims, email string, upd ports.VendorUpdate) (*ports.UpdateResult, error) {
		if actor.Subject != "acme@x.com" || email != "acme@x.com" {
			t.Fatalf("unexpected actor/target: %q/%q", actor.Subject, email)
		}
		if upd.Address == nil || *upd.Address != "99 New Yard" {
			t.Fatalf("address not carried: %+v", upd)
		}
		if upd.Email != nil || upd.Password != nil {
			t.Fatalf("absent fields must stay nil: %+v", upd)
		}
		return &ports.UpdateResult{UserID: "v-1", Role: domain.RoleVendor, Name: "Acme Scrap", Message: "Vendor 'Acme Scrap' updated successfully"}, nil
	}}
	h := NewVendorHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/vendor/edit?email=acme@x.com", `{"address":"99 New Yard"}`)
	setClaims(c, domain.Claims{Subject: "acme@x.com", Role: domain.RoleVendor})
	if err := h.Edit(c); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	var resp vendorUpdateResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "Vendor 'Acme Scrap' updated successfully" || resp.UserID != "v-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVendorHandler_Edit_MissingEmail(t *testing.T) {
	h := NewVendorHandler(&stubAuthService{t: t})

	c, _ := newTestContext(http.MethodPut, "/vendor/edit", `{"address":"x"}`)
	setClaims(c, domain.Claims{Subject: "acme@x.com", Role: domain.RoleVendor})
	err := h.Edit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without email param, got %v", err)
	}
}
