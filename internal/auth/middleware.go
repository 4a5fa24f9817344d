package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/tourism-service/internal/domain"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the authenticated caller bound to the request after the
// guard admits it. BusinessID is set for business admins, AccessLevel for
// super admins; both are taken from the token, never re-read from storage.
type Principal struct {
	ID          string
	Role        domain.Role
	BusinessID  string
	AccessLevel int
}

// Guard validates bearer tokens and binds principals to requests. It is a
// pure decision over (token, current time): a principal deactivated after
// issuance keeps its outstanding tokens until they expire. Routes that
// cannot tolerate that window chain a Revalidator behind the guard.
type Guard struct {
	tokens *TokenManager
}

// NewGuard constructs the admission middleware.
func NewGuard(tokens *TokenManager) *Guard {
	return &Guard{tokens: tokens}
}

// Handle enforces authentication for protected routes. Every token failure
// (missing, malformed, bad signature, expired) collapses to a single
// unauthenticated result.
func (g *Guard) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := g.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthenticated("invalid token")
	}

	principal := claims.Principal()
	c.Locals(principalKey, &principal)
	return c.Next()
}

// PrincipalFromContext retrieves the principal bound by the guard.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
