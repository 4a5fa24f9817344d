package domain

// Role tags the three principal kinds the platform authenticates.
// The set is closed: the authenticator and the access guard both switch
// exhaustively on it and reject anything else.
type Role string

const (
	RoleTourist       Role = "tourist"
	RoleBusinessAdmin Role = "business_admin"
	RoleSuperAdmin    Role = "super_admin"
)

// Valid reports whether the tag is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTourist, RoleBusinessAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// AccountStatus represents lifecycle states shared by all principal kinds.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)
