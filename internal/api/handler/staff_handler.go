package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// StaffHandler handles staff account administration.
type StaffHandler struct {
	authService ports.AuthService
}

func NewStaffHandler(authService ports.AuthService) *StaffHandler {
	return &StaffHandler{authService: authService}
}

type registerStaffRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Login    string `json:"login"     validate:"required,min=3"`
	Role     string `json:"role"      validate:"required,oneof=administrator manager housekeeper"`
}

// Register provisions a staff account with the default password.
//
// @Summary      Register a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerStaffRequest  true  "Staff details"
// @Success      201   {object}  accountResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/staff [post]
func (h *StaffHandler) Register(c echo.Context) error {
	var req registerStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.authService.RegisterStaff(c.Request().Context(), ports.RegisterStaffInput{
		FullName: req.FullName,
		Login:    req.Login,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Unblock lifts the lockout on a staff account.
//
// @Summary      Unblock a staff account
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        login  path  string  true  "Account login"
// @Success      204    "account unblocked"
// @Failure      404    {object}  map[string]string
// @Router       /v1/staff/{login}/unblock [post]
func (h *StaffHandler) Unblock(c echo.Context) error {
	login := c.Param("login")
	if err := h.authService.Unblock(c.Request().Context(), login); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
