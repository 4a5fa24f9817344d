package auth

import (
	"testing"

	"github.com/voyago/tourism-service/internal/domain"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

func TestCheckOwnership(t *testing.T) {
	cases := []struct {
		name      string
		principal Principal
		target    string
		admitted  bool
	}{
		{
			name:      "admin of target business",
			principal: Principal{ID: "a1", Role: domain.RoleBusinessAdmin, BusinessID: "biz-5"},
			target:    "biz-5",
			admitted:  true,
		},
		{
			name:      "admin of another business",
			principal: Principal{ID: "a1", Role: domain.RoleBusinessAdmin, BusinessID: "biz-5"},
			target:    "biz-6",
			admitted:  false,
		},
		{
			name:      "super admin bypasses scope",
			principal: Principal{ID: "s1", Role: domain.RoleSuperAdmin},
			target:    "biz-6",
			admitted:  true,
		},
		{
			name:      "tourist never owns a business",
			principal: Principal{ID: "t1", Role: domain.RoleTourist},
			target:    "biz-5",
			admitted:  false,
		},
		{
			name:      "admin with empty scope",
			principal: Principal{ID: "a1", Role: domain.RoleBusinessAdmin},
			target:    "",
			admitted:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckOwnership(&tc.principal, tc.target)
			if tc.admitted && err != nil {
				t.Fatalf("expected admit, got %v", err)
			}
			if !tc.admitted {
				if err == nil {
					t.Fatal("expected forbidden, got admit")
				}
				if !apperrors.HasCode(err, apperrors.CodeForbidden) {
					t.Fatalf("expected %s, got %v", apperrors.CodeForbidden, err)
				}
			}
		})
	}
}
