package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
	"github.com/aurora-hotel/inventory-system/internal/infrastructure/catalog"
)

// RoomHandler handles the room catalog and inventory views.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

type roomResponse struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	Floor         int     `json:"floor"`
	Category      string  `json:"category"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// List handles GET /v1/rooms with an optional ?status= filter.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by room status"
// @Success      200     {array}   roomResponse
// @Router       /v1/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	status := domain.RoomStatus(c.QueryParam("status"))
	rooms, err := h.service.ListRooms(c.Request().Context(), status)
	if err != nil {
		return err
	}

	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomResponse{
			ID:            r.ID,
			Number:        r.Number,
			Floor:         r.Floor,
			Category:      r.Category,
			PricePerNight: r.PricePerNight,
			Status:        string(r.Status),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Import handles POST /v1/rooms/import. The room catalog is uploaded as an
// xlsx workbook in the "file" form field.
//
// @Summary      Import the room catalog
// @Tags         rooms
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Room catalog workbook (xlsx)"
// @Success      200   {object}  importResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/rooms/import [post]
func (h *RoomHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file not found in request")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	entries, err := catalog.ParseXLSX(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.ImportCatalog(c.Request().Context(), entries)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, importResponse{
		Imported: result.Imported,
		Skipped:  result.Skipped,
	})
}
