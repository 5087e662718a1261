package handler

import (
	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/request"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItemInput{
			ItemType: enum.ItemType(item.ItemType),
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	input := &service.CheckoutInput{
		CashierID:     *userID,
		BarberID:      req.BarberID,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Items:         items,
	}

	txn, err := h.checkoutService.Checkout(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction completed successfully", txn)
}
