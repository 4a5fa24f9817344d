package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/api/dto"
	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/service"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// TouristsHandler exposes the authenticated tourist's profile.
type TouristsHandler struct {
	tourists *service.TouristService
}

// NewTouristsHandler constructs the handler.
func NewTouristsHandler(tourists *service.TouristService) *TouristsHandler {
	return &TouristsHandler{tourists: tourists}
}

// Me handles GET /tourists/me.
func (h *TouristsHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	tourist, err := h.tourists.GetProfile(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"tourist": dto.NewTouristProfileResponse(tourist)}})
}

// UpdateMe handles PUT /tourists/me.
func (h *TouristsHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.TouristProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FirstName == "" {
		return fiber.NewError(http.StatusBadRequest, "first name required")
	}

	tourist, err := h.tourists.UpdateProfile(c.UserContext(), principal.ID, req.FirstName, req.LastName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"tourist": dto.NewTouristProfileResponse(tourist)}})
}
