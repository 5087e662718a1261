package enum

// ExpenseCategory classifies back-office expense entries
type ExpenseCategory string

const (
	ExpenseRent      ExpenseCategory = "RENT"
	ExpenseUtilities ExpenseCategory = "UTILITIES"
	ExpenseSupplies  ExpenseCategory = "SUPPLIES"
	ExpenseOther     ExpenseCategory = "OTHER"
)

// Valid reports whether the category is a known value
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseRent, ExpenseUtilities, ExpenseSupplies, ExpenseOther:
		return true
	}
	return false
}
