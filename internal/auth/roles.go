package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/domain"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// RoleSet describes which roles a route admits. The zero value is AnyRole:
// any authenticated principal passes. Deny-all is not representable, so a
// route can never be locked out by an accidentally empty list.
type RoleSet struct {
	allowed map[domain.Role]struct{}
}

// AnyRole admits every authenticated principal regardless of role.
func AnyRole() RoleSet {
	return RoleSet{}
}

// Roles builds a set admitting exactly the given roles. With no arguments
// it is equivalent to AnyRole.
func Roles(roles ...domain.Role) RoleSet {
	if len(roles) == 0 {
		return AnyRole()
	}
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return RoleSet{allowed: allowed}
}

// Admits reports whether the set allows the role.
func (s RoleSet) Admits(role domain.Role) bool {
	if len(s.allowed) == 0 {
		return true
	}
	_, ok := s.allowed[role]
	return ok
}

// Require produces middleware rejecting principals outside the set. It must
// run after Guard.Handle.
func Require(set RoleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if !set.Admits(principal.Role) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireRoles is shorthand for Require(Roles(roles...)).
func RequireRoles(roles ...domain.Role) fiber.Handler {
	return Require(Roles(roles...))
}
