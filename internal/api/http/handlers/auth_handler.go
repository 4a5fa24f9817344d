package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/api/dto"
	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/service"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// AuthHandler exposes registration, login and password endpoints for all
// three principal kinds.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// RegisterTourist handles POST /auth/tourists/register.
func (h *AuthHandler) RegisterTourist(c *fiber.Ctx) error {
	var req dto.TouristRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return fiber.NewError(http.StatusBadRequest, "first name, email, password required")
	}

	tourist, err := h.auth.RegisterTourist(c.UserContext(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"tourist": dto.NewTouristProfileResponse(tourist)},
	})
}

// LoginTourist handles POST /auth/tourists/login.
func (h *AuthHandler) LoginTourist(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	tourist, token, exp, err := h.auth.LoginTourist(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"tourist": dto.NewTouristProfileResponse(tourist),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// LoginBusinessAdmin handles POST /auth/business-admins/login.
func (h *AuthHandler) LoginBusinessAdmin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	admin, token, exp, err := h.auth.LoginBusinessAdmin(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"admin": dto.NewBusinessAdminResponse(admin),
			"auth":  dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// LoginSuperAdmin handles POST /auth/super-admins/login.
func (h *AuthHandler) LoginSuperAdmin(c *fiber.Ctx) error {
	var req dto.SuperAdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	admin, token, exp, err := h.auth.LoginSuperAdmin(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"admin": fiber.Map{
				"id":           admin.ID,
				"username":     admin.Username,
				"access_level": admin.AccessLevel,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// ChangePassword handles POST /auth/password/change for any authenticated
// principal.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "current and new password required")
	}

	if err := h.auth.ChangePassword(c.UserContext(), principal, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password_changed"}})
}
