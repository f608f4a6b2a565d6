package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/api/metrics"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// ReportHandler serves the daily statistics report.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type dailyReportResponse struct {
	Date          string  `json:"date"`
	TotalRooms    int64   `json:"total_rooms"`
	OccupiedRooms int64   `json:"occupied_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
	Revenue       float64 `json:"revenue"`
	ADR           float64 `json:"adr"`
	RevPAR        float64 `json:"revpar"`
}

// Daily handles GET /v1/reports/daily?date=YYYY-MM-DD.
//
// @Summary      Daily occupancy and revenue report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  true  "Report date (YYYY-MM-DD)"
// @Success      200   {object}  dailyReportResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/reports/daily [get]
func (h *ReportHandler) Daily(c echo.Context) error {
	dateStr := c.QueryParam("date")
	if dateStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}
	date, err := parseDate(dateStr)
	if err != nil {
		return err
	}

	report, err := h.service.Daily(c.Request().Context(), date)
	if err != nil {
		return err
	}

	metrics.OccupancyRate.Set(report.OccupancyRate)
	return c.JSON(http.StatusOK, dailyReportResponse{
		Date:          report.Date.Format(dateLayout),
		TotalRooms:    report.TotalRooms,
		OccupiedRooms: report.OccupiedRooms,
		OccupancyRate: report.OccupancyRate,
		Revenue:       report.Revenue,
		ADR:           report.ADR,
		RevPAR:        report.RevPAR,
	})
}
