package domain

// Role is fixed at account creation.
type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleLandlord, RoleTenant, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
