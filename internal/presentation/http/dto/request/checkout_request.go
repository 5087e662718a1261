package request

import "github.com/google/uuid"

// CheckoutItemRequest is one cart line. Only the catalog reference and
// quantity are accepted; prices are resolved server-side.
type CheckoutItemRequest struct {
	ItemType string    `json:"item_type" binding:"required,oneof=SERVICE PRODUCT"`
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest represents a checkout submission
type CheckoutRequest struct {
	BarberID      uuid.UUID             `json:"barber_id" binding:"required"`
	PaymentMethod string                `json:"payment_method" binding:"required,oneof=CASH QRIS TRANSFER DEBIT"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}
