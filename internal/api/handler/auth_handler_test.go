package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn   func(ctx context.Context, login, password string) (*ports.LoginResult, error)
	changePasswordFn func(ctx context.Context, login, current, newPassword, confirmation string) error
	unblockFn        func(ctx context.Context, login string) error
	registerFn       func(ctx context.Context, input ports.RegisterStaffInput) (*domain.Account, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, login, password string) (*ports.LoginResult, error) {
	return s.authenticateFn(ctx, login, password)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, login, current, newPassword, confirmation string) error {
	return s.changePasswordFn(ctx, login, current, newPassword, confirmation)
}

func (s *stubAuthService) Unblock(ctx context.Context, login string) error {
	return s.unblockFn(ctx, login)
}

func (s *stubAuthService) RegisterStaff(ctx context.Context, input ports.RegisterStaffInput) (*domain.Account, error) {
	return s.registerFn(ctx, input)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, login, password string) (*ports.LoginResult, error) {
			if login != "masha" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", login, password)
			}
			return &ports.LoginResult{
				Token:              "jwt-token",
				Account:            &domain.Account{Login: "masha", Role: domain.RoleManager, FullName: "Masha"},
				MustChangePassword: true,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"login":"masha","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "jwt-token" {
		t.Fatalf("missing token: %+v", resp)
	}
	if resp["must_change_password"] != true {
		t.Fatalf("must_change_password not surfaced: %+v", resp)
	}
	account, ok := resp["account"].(map[string]any)
	if !ok || account["login"] != "masha" {
		t.Fatalf("unexpected account payload: %+v", resp)
	}
}

func TestAuthHandler_Login_BlockedPropagates(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, login, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrAccountBlocked
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"login":"masha","password":"x"}`)
	err := h.Login(c)
	if err == nil || !strings.Contains(err.Error(), "blocked") {
		t.Fatalf("expected blocked error to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"login":"masha"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_UsesClaimsLogin(t *testing.T) {
	var gotLogin string
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, login, current, newPassword, confirmation string) error {
			gotLogin = login
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/password",
		`{"current_password":"default","new_password":"n3w","confirmation":"n3w"}`)
	c.Set("login", "masha")
	c.Set("role", domain.RoleManager)

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotLogin != "masha" {
		t.Fatalf("expected claims login, got %q", gotLogin)
	}
}

func TestAuthHandler_ChangePassword_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/password",
		`{"current_password":"default","new_password":"n3w","confirmation":"n3w"}`)
	err := h.ChangePassword(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestStaffHandler_Register(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterStaffInput) (*domain.Account, error) {
			if input.Login != "katya" || input.Role != domain.RoleHousekeeper {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Account{ID: "1", Login: input.Login, Role: input.Role, FullName: input.FullName}, nil
		},
	}
	h := NewStaffHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/staff",
		`{"full_name":"Katya Ivanova","login":"katya","role":"housekeeper"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestStaffHandler_Register_BadRole(t *testing.T) {
	h := NewStaffHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/staff",
		`{"full_name":"Katya Ivanova","login":"katya","role":"bellhop"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestStaffHandler_Unblock(t *testing.T) {
	var gotLogin string
	stub := &stubAuthService{
		unblockFn: func(ctx context.Context, login string) error {
			gotLogin = login
			return nil
		},
	}
	h := NewStaffHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/staff/masha/unblock", "")
	c.SetParamNames("login")
	c.SetParamValues("masha")

	if err := h.Unblock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotLogin != "masha" {
		t.Fatalf("expected login param, got %q", gotLogin)
	}
}

func asHTTPError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}
