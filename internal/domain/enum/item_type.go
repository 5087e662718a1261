package enum

// ItemType distinguishes service and product line items
type ItemType string

const (
	ItemService ItemType = "SERVICE"
	ItemProduct ItemType = "PRODUCT"
)

// Valid reports whether the item type is a known value
func (t ItemType) Valid() bool {
	return t == ItemService || t == ItemProduct
}
