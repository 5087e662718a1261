package service

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/infrastructure/cache"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
)

// CheckoutService settles sales: it prices the cart from the catalog,
// computes the barber's commission and persists the transaction together
// with the stock decrements in one atomic unit.
type CheckoutService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	serviceRepo     repository.ServiceRepository
	barberRepo      repository.BarberRepository
	cache           cache.Cache
}

func NewCheckoutService(
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	barberRepo repository.BarberRepository,
	cache cache.Cache,
) *CheckoutService {
	return &CheckoutService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		serviceRepo:     serviceRepo,
		barberRepo:      barberRepo,
		cache:           cache,
	}
}

// CheckoutItemInput references one catalog entry in a cart. Prices are
// never taken from the client; they are re-read from the catalog at
// settlement time.
type CheckoutItemInput struct {
	ItemType enum.ItemType
	ItemID   uuid.UUID
	Quantity int
}

type CheckoutInput struct {
	CashierID     uuid.UUID
	BarberID      uuid.UUID
	PaymentMethod enum.PaymentMethod
	Items         []CheckoutItemInput
}

// Checkout settles a sale. On insufficient stock nothing is written and the
// returned error names the offending product.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Transaction, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Transaction must contain at least one item")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if !item.ItemType.Valid() {
			return nil, apperror.NewBadRequestError("Invalid item type")
		}
	}

	barber, err := s.barberRepo.GetByID(ctx, input.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, apperror.NewNotFoundError("Barber")
	}
	if !barber.IsActive {
		return nil, apperror.NewBadRequestError("Barber is not active")
	}

	var productIDs, serviceIDs []uuid.UUID
	for _, item := range input.Items {
		switch item.ItemType {
		case enum.ItemProduct:
			productIDs = append(productIDs, item.ItemID)
		case enum.ItemService:
			serviceIDs = append(serviceIDs, item.ItemID)
		}
	}

	products, err := s.fetchProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	services, err := s.fetchServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	total := money.Zero
	items := make([]entity.TransactionItem, 0, len(input.Items))
	decrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		var (
			name      string
			unitPrice money.Money
			productID *uuid.UUID
			serviceID *uuid.UUID
		)

		switch item.ItemType {
		case enum.ItemProduct:
			product := products[item.ItemID]
			if product == nil {
				return nil, apperror.NewNotFoundError("Product")
			}
			if !product.IsActive {
				return nil, apperror.NewBadRequestError("Product " + product.Name + " is not available")
			}
			if item.Quantity > product.Stock {
				return nil, apperror.NewInsufficientStockError(product.Name, item.Quantity, product.Stock)
			}
			name = product.Name
			unitPrice = product.SellPrice
			id := product.ID
			productID = &id
			decrements[product.ID] += item.Quantity
		case enum.ItemService:
			svc := services[item.ItemID]
			if svc == nil {
				return nil, apperror.NewNotFoundError("Service")
			}
			if !svc.IsActive {
				return nil, apperror.NewBadRequestError("Service " + svc.Name + " is not available")
			}
			name = svc.Name
			unitPrice = svc.Price
			id := svc.ID
			serviceID = &id
		}

		subtotal := unitPrice.MulInt(item.Quantity)
		total = total.Add(subtotal)

		items = append(items, entity.TransactionItem{
			ItemType:  item.ItemType,
			ProductID: productID,
			ServiceID: serviceID,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
	}

	commission := money.Zero
	if barber.CompensationType.EarnsCommission() {
		commission = total.MulRate(barber.CommissionRate).Round0()
	}

	txn := &entity.Transaction{
		Date:            time.Now(),
		CashierID:       input.CashierID,
		BarberID:        input.BarberID,
		PaymentMethod:   input.PaymentMethod,
		TotalAmount:     total,
		TotalCommission: commission,
		Items:           items,
	}

	failedIDs, err := s.transactionRepo.CreateWithStockDecrements(ctx, txn, decrements)
	if err != nil {
		return nil, apperror.NewTransactionFailedError(err)
	}
	if len(failedIDs) > 0 {
		// Stock moved between the pre-check and the write. Report from the
		// snapshot we priced against.
		for _, item := range input.Items {
			if item.ItemType != enum.ItemProduct {
				continue
			}
			if item.ItemID == failedIDs[0] {
				product := products[item.ItemID]
				return nil, apperror.NewInsufficientStockError(product.Name, item.Quantity, product.Stock)
			}
		}
		return nil, apperror.NewConflictError("Insufficient stock")
	}

	if s.cache != nil {
		s.cache.DeletePattern("dashboard:*")
	}

	created, err := s.transactionRepo.GetWithItems(ctx, txn.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return txn, nil
	}
	return created, nil
}

func (s *CheckoutService) fetchProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	result := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		result[products[i].ID] = &products[i]
	}
	return result, nil
}

func (s *CheckoutService) fetchServices(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Service, error) {
	result := make(map[uuid.UUID]*entity.Service, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	services, err := s.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range services {
		result[services[i].ID] = &services[i]
	}
	return result, nil
}
