package enum

// CompensationType determines how a barber is paid: a fixed base salary,
// transaction commission, or both.
type CompensationType string

const (
	CompensationBaseOnly       CompensationType = "BASE_ONLY"
	CompensationCommissionOnly CompensationType = "COMMISSION_ONLY"
	CompensationBoth           CompensationType = "BOTH"
)

// Valid reports whether the compensation type is a known value
func (t CompensationType) Valid() bool {
	switch t {
	case CompensationBaseOnly, CompensationCommissionOnly, CompensationBoth:
		return true
	}
	return false
}

// EarnsCommission reports whether barbers of this type earn transaction
// commission.
func (t CompensationType) EarnsCommission() bool {
	return t == CompensationCommissionOnly || t == CompensationBoth
}

// EarnsBaseSalary reports whether barbers of this type receive a base salary.
func (t CompensationType) EarnsBaseSalary() bool {
	return t == CompensationBaseOnly || t == CompensationBoth
}
