package handler

import "time"

type stayEventRequest struct {
	RoomNumber string    `json:"room_number" validate:"required"`
	Type       string    `json:"type"        validate:"required,oneof=checked_out cleaning_done"`
	Timestamp  time.Time `json:"timestamp"   validate:"required"`
	Source     string    `json:"source"      validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
