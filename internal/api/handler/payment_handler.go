package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// PaymentHandler records payments against bookings.
type PaymentHandler struct {
	service ports.BookingService
}

func NewPaymentHandler(service ports.BookingService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type recordPaymentRequest struct {
	BookingID     string  `json:"booking_id"     validate:"required"`
	Date          string  `json:"date"           validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	ReceiptNumber string  `json:"receipt_number"`
}

type paymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	ReceiptNumber string  `json:"receipt_number,omitempty"`
}

// Record handles POST /v1/payments.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Payment details"
// @Success      201   {object}  paymentResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	payment, err := h.service.RecordPayment(c.Request().Context(), ports.RecordPaymentInput{
		BookingID:     req.BookingID,
		Date:          date,
		Amount:        req.Amount,
		ReceiptNumber: req.ReceiptNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, paymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		Date:          payment.Date.Format(dateLayout),
		Amount:        payment.Amount,
		ReceiptNumber: payment.ReceiptNumber,
	})
}
