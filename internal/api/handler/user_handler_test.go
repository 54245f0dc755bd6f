package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/waste-mgmt/internal/api/middleware"
	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// stubAuthService implements ports.AuthService with per-test function
// fields; unset methods fail the test if called.
type stubAuthService struct {
	t *testing.T

	signupUser   func(ports.SignupUserInput) (string, error)
	loginUser    func(username, password string) (*ports.LoginResult, error)
	resolveUser  func(subject string) (*domain.User, error)
	listUsers    func() ([]*domain.User, error)
	updateUser   func(actor domain.Claims, username string, upd ports.UserUpdate) (*ports.UpdateResult, error)
	signupVendor func(ports.SignupVendorInput) (string, error)
	loginVendor  func(email, password string) (*ports.LoginResult, error)
	resolveVend  func(subject string) (*domain.Vendor, error)
	updateVendor func(actor domain.Claims, email string, upd ports.VendorUpdate) (*ports.UpdateResult, error)
}

func (s *stubAuthService) SignupUser(_ context.Context, in ports.SignupUserInput) (string, error) {
	if s.signupUser == nil {
		s.t.Fatalf("unexpected SignupUser call")
	}
	return s.signupUser(in)
}

func (s *stubAuthService) LoginUser(_ context.Context, username, password string) (*ports.LoginResult, error) {
	if s.loginUser == nil {
		s.t.Fatalf("unexpected LoginUser call")
	}
	return s.loginUser(username, password)
}

func (s *stubAuthService) ResolveUser(_ context.Context, subject string) (*domain.User, error) {
	if s.resolveUser == nil {
		s.t.Fatalf("unexpected ResolveUser call")
	}
	return s.resolveUser(subject)
}

func (s *stubAuthService) ListUsers(_ context.Context) ([]*domain.User, error) {
	if s.listUsers == nil {
		s.t.Fatalf("unexpected ListUsers call")
	}
	return s.listUsers()
}

func (s *stubAuthService) UpdateUser(_ context.Context, actor domain.Claims, username string, upd ports.UserUpdate) (*ports.UpdateResult, error) {
	if s.updateUser == nil {
		s.t.Fatalf("unexpected UpdateUser call")
	}
	return s.updateUser(actor, username, upd)
}

func (s *stubAuthService) SignupVendor(_ context.Context, in ports.SignupVendorInput) (string, error) {
	if s.signupVendor == nil {
		s.t.Fatalf("unexpected SignupVendor call")
	}
	return s.signupVendor(in)
}

func (s *stubAuthService) LoginVendor(_ context.Context, email, password string) (*ports.LoginResult, error) {
	if s.loginVendor == nil {
		s.t.Fatalf("unexpected LoginVendor call")
	}
	return s.loginVendor(email, password)
}

func (s *stubAuthService) ResolveVendor(_ context.Context, subject string) (*domain.Vendor, error) {
	if s.resolveVend == nil {
		s.t.Fatalf("unexpected ResolveVendor call")
	}
	return s.resolveVend(subject)
}

func (s *stubAuthService) UpdateVendor(_ context.Context, actor domain.Claims, email string, upd ports.VendorUpdate) (*ports.UpdateResult, error) {
	if s.updateVendor == nil {
		s.t.Fatalf("unexpected UpdateVendor call")
	}
	return s.updateVendor(actor, email, upd)
}

// newTestContext builds an echo context with the package validator
// installed, mirroring the router setup.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setClaims(c echo.Context, claims domain.Claims) {
	c.Set(middleware.CtxSubject, claims.Subject)
	c.Set(middleware.CtxRole, claims.Role)
	c.Set(middleware.CtxExpiry, claims.ExpiresAt)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
}

func TestUserHandler_Signup(t *testing.T) {
	svc := &stubAuthService{t: t, signupUser: func(in ports.SignupUserInput) (string, error) {
		if in.Username != "alice" || in.Password != "pw123" || in.Email != "a@x.com" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return "u-1", nil
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/user/signup",
		`{"username":"alice","password":"pw123","email":"a@x.com","gender":"F","mobile":"5551234"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp signupResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "User created successfully" || resp.UserID != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Signup_MissingFields(t *testing.T) {
	h := NewUserHandler(&stubAuthService{t: t})

	c, _ := newTestContext(http.MethodPost, "/user/signup", `{"username":"alice"}`)
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Signup_BadEmail(t *testing.T) {
	h := NewUserHandler(&stubAuthService{t: t})

	c, _ := newTestContext(http.MethodPost, "/user/signup",
		`{"username":"alice","password":"pw","email":"not-an-email","gender":"F","mobile":"5551234"}`)
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed email, got %v", err)
	}
}

func TestUserHandler_Signup_Duplicate(t *testing.T) {
	svc := &stubAuthService{t: t, signupUser: func(ports.SignupUserInput) (string, error) {
		return "", domain.ErrDuplicateKey
	}}
	h := NewUserHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/user/signup",
		`{"username":"alice","password":"pw","email":"a@x.com","gender":"F","mobile":"5551234"}`)
	if err := h.Signup(c); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestUserHandler_Login(t *testing.T) {
	svc := &stubAuthService{t: t, loginUser: func(username, password string) (*ports.LoginResult, error) {
		if username != "alice" || password != "pw123" {
			t.Fatalf("unexpected credentials: %s/%s", username, password)
		}
		return &ports.LoginResult{AccessToken: "tok-1", UserID: "u-1", Role: domain.RoleUser}, nil
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/user/login", `{"username":"alice","password":"pw123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var resp userLoginResponse
	decodeBody(t, rec, &resp)
	if resp.AccessToken != "tok-1" || resp.TokenType != "bearer" || resp.UserID != "u-1" || resp.Role != domain.RoleUser {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{t: t, loginUser: func(string, string) (*ports.LoginResult, error) {
		return nil, domain.ErrInvalidCredentials
	}}
	h := NewUserHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/user/login", `{"username":"alice","password":"bad"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserHandler_Me(t *testing.T) {
	svc := &stubAuthService{t: t, resolveUser: func(subject string) (*domain.User, error) {
		if subject != "alice" {
			t.Fatalf("unexpected subject %q", subject)
		}
		return &domain.User{ID: "u-1", Role: domain.RoleUser, Username: "alice"}, nil
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/user/me", "")
	setClaims(c, domain.Claims{Subject: "alice", Role: domain.RoleUser, ExpiresAt: 1700000000})
	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}

	var resp meResponse
	decodeBody(t, rec, &resp)
	if resp.Sub != "alice" || resp.Role != domain.RoleUser || resp.Exp != 1700000000 || resp.UserID != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Me_NoClaims(t *testing.T) {
	h := NewUserHandler(&stubAuthService{t: t})

	c, _ := newTestContext(http.MethodGet, "/user/me", "")
	err := h.Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestUserHandler_Me_RecordGone(t *testing.T) {
	svc := &stubAuthService{t: t, resolveUser: func(string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}}
	h := NewUserHandler(svc)

	c, _ := newTestContext(http.MethodGet, "/user/me", "")
	setClaims(c, domain.Claims{Subject: "alice", Role: domain.RoleUser})
	if err := h.Me(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	svc := &stubAuthService{t: t, listUsers: func() ([]*domain.User, error) {
		return []*domain.User{
			{ID: "u-1", Username: "alice", Email: "a@x.com"},
			{ID: "u-2", Username: "bob", Email: "b@x.com"},
		}, nil
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/user/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var resp []userResponse
	decodeBody(t, rec, &resp)
	if len(resp) != 2 || resp[0].Username != "alice" || resp[1].Username != "bob" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Edit(t *testing.T) {
	svc := &stubAuthService{t: t, updateUser: func(actor domain.Claims, username string, upd ports.UserUpdate) (*ports.UpdateResult, error) {
		if actor.Subject != "alice" || username != "alice" {
			t.Fatalf("unexpected actor/target: %q/%q", actor.Subject, username)
		}
		if upd.Mobile == nil || *upd.Mobile != "5559999" {
			t.Fatalf("mobile not carried: %+v", upd)
		}
		if upd.Email != nil || upd.Password != nil || upd.Gender != nil {
			t.Fatalf("absent fields must stay nil: %+v", upd)
		}
		return &ports.UpdateResult{UserID: "u-1", Role: domain.RoleUser, Message: "User 'alice' updated successfully"}, nil
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/user/edit?username=alice", `{"mobile":"5559999"}`)
	setClaims(c, domain.Claims{Subject: "alice", Role: domain.RoleUser})
	if err := h.Edit(c); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	var resp userUpdateResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "User 'alice' updated successfully" || resp.UserID != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Edit_MissingUsername(t *testing.T) {
	h := NewUserHandler(&stubAuthService{t: t})

	c, _ := newTestContext(http.MethodPut, "/user/edit", `{"mobile":"5559999"}`)
	setClaims(c, domain.Claims{Subject: "alice", Role: domain.RoleUser})
	err := h.Edit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without username param, got %v", err)
	}
}

func TestUserHandler_Edit_Forbidden(t *testing.T) {
	svc := &stubAuthService{t: t, updateUser: func(domain.Claims, string, ports.UserUpdate) (*ports.UpdateResult, error) {
		return nil, domain.ErrForbidden
	}}
	h := NewUserHandler(svc)

	c, _ := newTestContext(http.MethodPut, "/user/edit?username=alice", `{"mobile":"5559999"}`)
	setClaims(c, domain.Claims{Subject: "mallory", Role: domain.RoleUser})
	if err := h.Edit(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
