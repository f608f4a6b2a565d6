package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/api/metrics"
	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// BookingHandler handles booking lifecycle operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type guestRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Phone       string `json:"phone"     validate:"required"`
	Email       string `json:"email"     validate:"required,email"`
	Passport    string `json:"passport"  validate:"required"`
	Preferences string `json:"preferences"`
}

type createBookingRequest struct {
	Guest      guestRequest `json:"guest"       validate:"required"`
	RoomNumber string       `json:"room_number" validate:"required"`
	CheckIn    string       `json:"check_in"    validate:"required"`
	CheckOut   string       `json:"check_out"   validate:"required"`
}

type bookingResponse struct {
	BookingID  string `json:"booking_id"`
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "dates must use YYYY-MM-DD")
	}
	return t, nil
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return err
	}

	result, err := h.service.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		Guest: ports.GuestInput{
			FullName:    req.Guest.FullName,
			Phone:       req.Guest.Phone,
			Email:       req.Guest.Email,
			Passport:    req.Guest.Passport,
			Preferences: req.Guest.Preferences,
		},
		RoomNumber: req.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingConflict):
			metrics.BookingConflictsTotal.WithLabelValues("overlap").Inc()
		case errors.Is(err, domain.ErrRoomBusy):
			metrics.BookingConflictsTotal.WithLabelValues("room_busy").Inc()
		case errors.Is(err, domain.ErrRoomNotBookable):
			metrics.BookingConflictsTotal.WithLabelValues("not_bookable").Inc()
		}
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, bookingResponse{
		BookingID:  result.BookingID,
		RoomNumber: result.RoomNumber,
		Status:     result.Status,
		CheckIn:    result.CheckIn.Format(dateLayout),
		CheckOut:   result.CheckOut.Format(dateLayout),
	})
}

// CheckIn handles POST /v1/bookings/:id/check-in.
//
// @Summary      Check a guest in
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking ID"
// @Success      204  "guest checked in"
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c echo.Context) error {
	if err := h.service.CheckIn(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CheckOut handles POST /v1/bookings/:id/check-out.
//
// @Summary      Check a guest out
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking ID"
// @Success      204  "guest checked out"
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/bookings/{id}/check-out [post]
func (h *BookingHandler) CheckOut(c echo.Context) error {
	if err := h.service.CheckOut(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Cancel handles POST /v1/bookings/:id/cancel.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking ID"
// @Success      204  "booking cancelled"
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	if err := h.service.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
