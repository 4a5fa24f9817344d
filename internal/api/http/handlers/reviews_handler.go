package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/api/dto"
	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/service"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// ReviewsHandler exposes review endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs the handler.
func NewReviewsHandler(reviews *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// ListByBusiness handles GET /businesses/:id/reviews (public).
func (h *ReviewsHandler) ListByBusiness(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListByBusiness(c.UserContext(), c.Params("id"),
		parseIntQuery(c, "limit", 20), parseIntQuery(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reviews": dto.NewReviewListResponse(reviews)}})
}

// Create handles POST /businesses/:id/reviews (tourist only).
func (h *ReviewsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	review, err := h.reviews.Create(c.UserContext(), principal.ID, c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"review": dto.NewReviewResponse(review)},
	})
}

// Update handles PUT /reviews/:id (author only).
func (h *ReviewsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	review, err := h.reviews.Update(c.UserContext(), principal, c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"review": dto.NewReviewResponse(review)}})
}

// Delete handles DELETE /reviews/:id (author or super admin).
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	if err := h.reviews.Delete(c.UserContext(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
