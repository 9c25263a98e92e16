package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attire-api/internal/application/timetracking"
)

// TimeHandler fichajes de la sesión activa.
type TimeHandler struct {
	uc *timetracking.UseCase
}

// NewTimeHandler construye el handler.
func NewTimeHandler(uc *timetracking.UseCase) *TimeHandler {
	return &TimeHandler{uc: uc}
}

// ClockIn godoc
// @Summary      Fichar entrada
// @Tags         time
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.TimeEntryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/time/clock-in [post]
func (h *TimeHandler) ClockIn(c *fiber.Ctx) error {
	out, err := h.uc.ClockIn(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ClockOut godoc
// @Summary      Fichar salida
// @Tags         time
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ClockOutResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/time/clock-out [post]
func (h *TimeHandler) ClockOut(c *fiber.Ctx) error {
	out, err := h.uc.ClockOut(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado del turno
// @Tags         time
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TimeStatusResponse
// @Router       /api/time/status [get]
func (h *TimeHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Entries godoc
// @Summary      Mis fichajes
// @Tags         time
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TimeEntryResponse
// @Router       /api/time/entries [get]
func (h *TimeHandler) Entries(c *fiber.Ctx) error {
	out, err := h.uc.Entries(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
