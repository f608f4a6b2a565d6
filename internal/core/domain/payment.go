package domain

import (
	"errors"
	"time"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// Payment records money received against a booking. Payments are append-only
// and are read back only by the report aggregator.
type Payment struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
}
