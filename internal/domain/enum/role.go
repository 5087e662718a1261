package enum

// Role represents an operator role
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleCashier Role = "CASHIER"
)

// Valid reports whether the role is a known value
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleCashier:
		return true
	}
	return false
}
