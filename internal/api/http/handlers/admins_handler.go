package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/api/dto"
	"github.com/voyago/tourism-service/internal/service"
)

// AdminsHandler exposes super-admin-gated business admin management.
type AdminsHandler struct {
	admins *service.AdminService
}

// NewAdminsHandler constructs the handler.
func NewAdminsHandler(admins *service.AdminService) *AdminsHandler {
	return &AdminsHandler{admins: admins}
}

// Create handles POST /admins.
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.BusinessAdminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" || req.BusinessID == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password, business_id required")
	}

	admin, err := h.admins.CreateBusinessAdmin(c.UserContext(), req.Name, req.Email, req.Password, req.BusinessID, req.Permissions)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"admin": dto.NewBusinessAdminResponse(admin)},
	})
}

// Deactivate handles POST /admins/:id/deactivate.
func (h *AdminsHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.admins.DeactivateBusinessAdmin(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deactivated"}})
}
