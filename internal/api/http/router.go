package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/api/http/handlers"
	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Tourists   *handlers.TouristsHandler
	Businesses *handlers.BusinessesHandler
	Reviews    *handlers.ReviewsHandler
	Admins     *handlers.AdminsHandler
	Guard      *auth.Guard

	// Revalidator, when non-nil, re-checks account status on sensitive
	// routes (password change, admin management) behind the guard.
	Revalidator *auth.Revalidator
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	sensitive := func(h fiber.Handler) []fiber.Handler {
		chain := []fiber.Handler{cfg.Guard.Handle}
		if cfg.Revalidator != nil {
			chain = append(chain, cfg.Revalidator.Handle)
		}
		return append(chain, h)
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/tourists/register", cfg.Auth.RegisterTourist)
	authGroup.Post("/tourists/login", cfg.Auth.LoginTourist)
	authGroup.Post("/business-admins/login", cfg.Auth.LoginBusinessAdmin)
	authGroup.Post("/super-admins/login", cfg.Auth.LoginSuperAdmin)
	authGroup.Post("/password/change", sensitive(cfg.Auth.ChangePassword)...)

	tourists := app.Group("/tourists", cfg.Guard.Handle, auth.RequireRoles(domain.RoleTourist))
	tourists.Get("/me", cfg.Tourists.Me)
	tourists.Put("/me", cfg.Tourists.UpdateMe)

	app.Get("/businesses", cfg.Businesses.List)
	app.Get("/businesses/:id", cfg.Businesses.Get)
	app.Post("/businesses", cfg.Guard.Handle, auth.RequireRoles(domain.RoleSuperAdmin), cfg.Businesses.Create)
	app.Put("/businesses/:id", cfg.Guard.Handle,
		auth.RequireRoles(domain.RoleBusinessAdmin, domain.RoleSuperAdmin), cfg.Businesses.Update)

	app.Get("/businesses/:id/reviews", cfg.Reviews.ListByBusiness)
	app.Post("/businesses/:id/reviews", cfg.Guard.Handle, auth.RequireRoles(domain.RoleTourist), cfg.Reviews.Create)
	app.Put("/reviews/:id", cfg.Guard.Handle, auth.RequireRoles(domain.RoleTourist), cfg.Reviews.Update)
	app.Delete("/reviews/:id", cfg.Guard.Handle,
		auth.RequireRoles(domain.RoleTourist, domain.RoleSuperAdmin), cfg.Reviews.Delete)

	admins := app.Group("/admins", cfg.Guard.Handle, auth.RequireRoles(domain.RoleSuperAdmin))
	if cfg.Revalidator != nil {
		admins.Use(cfg.Revalidator.Handle)
	}
	admins.Post("/", cfg.Admins.Create)
	admins.Post("/:id/deactivate", cfg.Admins.Deactivate)
}
