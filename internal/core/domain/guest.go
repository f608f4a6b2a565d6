package domain

import "errors"

var ErrGuestNotFound = errors.New("guest not found")
var ErrGuestExists = errors.New("guest with these contact details already exists")

// Guest is a hotel guest. Phone, email and passport are each unique; the
// passport number is the identity used to recognise a returning guest.
type Guest struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Passport    string `json:"passport"`
	Preferences string `json:"preferences,omitempty"`
}
