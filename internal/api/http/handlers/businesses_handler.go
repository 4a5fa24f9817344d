package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/api/dto"
	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/repository"
	"github.com/voyago/tourism-service/internal/service"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// BusinessesHandler exposes business listing endpoints.
type BusinessesHandler struct {
	businesses *service.BusinessService
}

// NewBusinessesHandler constructs the handler.
func NewBusinessesHandler(businesses *service.BusinessService) *BusinessesHandler {
	return &BusinessesHandler{businesses: businesses}
}

// List handles GET /businesses (public).
func (h *BusinessesHandler) List(c *fiber.Ctx) error {
	filter := repository.BusinessFilter{
		Limit:  parseIntQuery(c, "limit", 20),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if search := c.Query("q"); search != "" {
		filter.SearchTerm = &search
	}

	businesses, err := h.businesses.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"businesses": dto.NewBusinessListResponse(businesses)}})
}

// Get handles GET /businesses/:id (public).
func (h *BusinessesHandler) Get(c *fiber.Ctx) error {
	business, err := h.businesses.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"business": dto.NewBusinessResponse(business)}})
}

// Create handles POST /businesses (super admin only).
func (h *BusinessesHandler) Create(c *fiber.Ctx) error {
	var req dto.BusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	business, err := h.businesses.Create(c.UserContext(), businessInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"business": dto.NewBusinessResponse(business)},
	})
}

// Update handles PUT /businesses/:id. The guard admits business admins and
// super admins; the service applies the ownership check.
func (h *BusinessesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.BusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	business, err := h.businesses.Update(c.UserContext(), principal, c.Params("id"), businessInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"business": dto.NewBusinessResponse(business)}})
}

func businessInput(req dto.BusinessRequest) service.BusinessInput {
	return service.BusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
	}
}

func parseIntQuery(c *fiber.Ctx, key string, fallback int) int {
	val := c.Query(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
