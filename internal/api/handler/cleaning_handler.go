package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/api/metrics"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// CleaningHandler handles housekeeping task operations.
type CleaningHandler struct {
	service ports.CleaningService
}

func NewCleaningHandler(service ports.CleaningService) *CleaningHandler {
	return &CleaningHandler{service: service}
}

type assignCleaningRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	StaffLogin string `json:"staff_login" validate:"required"`
	Date       string `json:"date"        validate:"required"`
}

type cleaningTaskResponse struct {
	ID            string `json:"id"`
	RoomID        string `json:"room_id"`
	StaffID       string `json:"staff_id"`
	ScheduledDate string `json:"scheduled_date"`
	Status        string `json:"status"`
}

// Assign handles POST /v1/cleaning.
//
// @Summary      Assign a cleaning task
// @Tags         cleaning
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignCleaningRequest  true  "Assignment details"
// @Success      201   {object}  cleaningTaskResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/cleaning [post]
func (h *CleaningHandler) Assign(c echo.Context) error {
	var req assignCleaningRequest
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

	task, err := h.service.Assign(c.Request().Context(), ports.AssignCleaningInput{
		RoomNumber: req.RoomNumber,
		StaffLogin: req.StaffLogin,
		Date:       date,
	})
	if err != nil {
		return err
	}

	metrics.CleaningTasksTotal.WithLabelValues("assigned").Inc()
	return c.JSON(http.StatusCreated, cleaningTaskResponse{
		ID:            task.ID,
		RoomID:        task.RoomID,
		StaffID:       task.StaffID,
		ScheduledDate: task.ScheduledDate.Format(dateLayout),
		Status:        string(task.Status),
	})
}

// Complete handles POST /v1/cleaning/:id/complete.
//
// @Summary      Complete a cleaning task
// @Tags         cleaning
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Task ID"
// @Success      204  "task completed"
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/cleaning/{id}/complete [post]
func (h *CleaningHandler) Complete(c echo.Context) error {
	if err := h.service.Complete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CleaningTasksTotal.WithLabelValues("done").Inc()
	return c.NoContent(http.StatusNoContent)
}
