package enum

// PaymentMethod represents how a transaction was paid
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentQris     PaymentMethod = "QRIS"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentDebit    PaymentMethod = "DEBIT"
)

// Valid reports whether the payment method is a known value
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentQris, PaymentTransfer, PaymentDebit:
		return true
	}
	return false
}
