package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/application/staff"
	"github.com/jhoicas/attire-api/internal/application/timetracking"
)

// StaffHandler vista administrativa del personal.
type StaffHandler struct {
	uc   *staff.UseCase
	time *timetracking.UseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *staff.UseCase, time *timetracking.UseCase) *StaffHandler {
	return &StaffHandler{uc: uc, time: time}
}

// List godoc
// @Summary      Listar personal
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StaffMemberResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ChangeRole godoc
// @Summary      Cambiar rol
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la identidad"
// @Param        body  body  dto.ChangeRoleRequest  true  "Rol nuevo"
// @Success      200   {object}  dto.StaffMemberResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/staff/{id}/role [put]
func (h *StaffHandler) ChangeRole(c *fiber.Ctx) error {
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ChangeRole(c.Context(), GetSession(c), c.Params("id"), in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ResetHours godoc
// @Summary      Reiniciar horas acumuladas
// @Tags         staff
// @Security     Bearer
// @Param        id   path  string  true  "ID de la identidad"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id}/reset-hours [post]
func (h *StaffHandler) ResetHours(c *fiber.Ctx) error {
	if err := h.time.ResetHours(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Entries godoc
// @Summary      Fichajes de una identidad
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la identidad"
// @Success      200  {array}  dto.TimeEntryResponse
// @Router       /api/staff/{id}/time-entries [get]
func (h *StaffHandler) Entries(c *fiber.Ctx) error {
	out, err := h.time.Entries(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
