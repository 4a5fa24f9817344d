package auth

import (
	"github.com/voyago/tourism-service/internal/domain"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// CheckOwnership enforces the per-resource rule for business-scoped
// operations: a business admin may only act on the business it is bound
// to, a super admin may act on any business by role alone. Runs after the
// guard has bound the principal; pure and O(1).
func CheckOwnership(p *Principal, targetBusinessID string) error {
	switch p.Role {
	case domain.RoleSuperAdmin:
		return nil
	case domain.RoleBusinessAdmin:
		if p.BusinessID != "" && p.BusinessID == targetBusinessID {
			return nil
		}
		return apperrors.NewForbidden("business is not managed by caller")
	default:
		return apperrors.NewForbidden("business management requires an admin role")
	}
}
