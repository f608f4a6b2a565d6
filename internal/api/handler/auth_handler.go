package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/api/metrics"
	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// AuthHandler handles authentication and password management.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type accountResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Login    string `json:"login"`
	Role     string `json:"role"`
	Blocked  bool   `json:"blocked"`
}

type loginResponse struct {
	Token              string          `json:"token"`
	Account            accountResponse `json:"account"`
	MustChangePassword bool            `json:"must_change_password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
	Confirmation    string `json:"confirmation"     validate:"required"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:       a.ID,
		FullName: a.FullName,
		Login:    a.Login,
		Role:     a.Role,
		Blocked:  a.Blocked,
	}
}

// Login authenticates a staff member and returns a JWT token.
//
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.authService.Authenticate(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountBlocked):
			metrics.LoginsTotal.WithLabelValues("blocked").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:              result.Token,
		Account:            toAccountResponse(result.Account),
		MustChangePassword: result.MustChangePassword,
	})
}

// ChangePassword replaces the authenticated staff member's password.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Password change"
// @Success      204   "password changed"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	login, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(),
		login, req.CurrentPassword, req.NewPassword, req.Confirmation); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
