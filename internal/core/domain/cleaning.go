package domain

import (
	"errors"
	"time"
)

// CleaningStatus represents the state of a cleaning task.
type CleaningStatus string

const (
	CleaningAssigned CleaningStatus = "assigned"
	CleaningDone     CleaningStatus = "done"
)

var ErrCleaningTaskNotFound = errors.New("cleaning task not found")
var ErrCleaningAlreadyAssigned = errors.New("room already has an active cleaning assignment")
var ErrNotHousekeeper = errors.New("staff member is not a housekeeper")

// CleaningTask assigns a housekeeper to a room. At most one task per room may
// be in the assigned state at a time.
type CleaningTask struct {
	ID            string         `json:"id"`
	RoomID        string         `json:"room_id"`
	StaffID       string         `json:"staff_id"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	Status        CleaningStatus `json:"status"`
}
