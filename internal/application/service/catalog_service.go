package service

import (
	"context"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// CatalogService manages the sellable catalog: retail products with
// tracked stock and grooming services.
type CatalogService struct {
	productRepo       repository.ProductRepository
	serviceRepo       repository.ServiceRepository
	transactionRepo   repository.TransactionRepository
	lowStockThreshold int
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	transactionRepo repository.TransactionRepository,
	lowStockThreshold int,
) *CatalogService {
	return &CatalogService{
		productRepo:       productRepo,
		serviceRepo:       serviceRepo,
		transactionRepo:   transactionRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

type ProductInput struct {
	Name      string
	BuyPrice  money.Money
	SellPrice money.Money
	Stock     int
}

func validateProductInput(input *ProductInput) error {
	var fieldErrors []apperror.FieldError

	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.BuyPrice.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "buy_price", Message: "Buy price must not be negative"})
	}
	if input.SellPrice.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sell_price", Message: "Sell price must not be negative"})
	}
	if input.Stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "Stock must not be negative"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:      input.Name,
		BuyPrice:  input.BuyPrice,
		SellPrice: input.SellPrice,
		Stock:     input.Stock,
		IsActive:  true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.BuyPrice = input.BuyPrice
	product.SellPrice = input.SellPrice
	product.Stock = input.Stock

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog. Products referenced by
// historical transactions are deactivated instead of deleted so receipts
// keep resolving.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}

	count, err := s.transactionRepo.CountByProductID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return s.productRepo.Deactivate(ctx, id)
	}

	return s.productRepo.Delete(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(products,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// ListLowStockProducts returns active products at or below the configured
// stock threshold.
func (s *CatalogService) ListLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, s.lowStockThreshold)
}

type ServiceInput struct {
	Name  string
	Price money.Money
}

func validateServiceInput(input *ServiceInput) error {
	var fieldErrors []apperror.FieldError

	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (s *CatalogService) CreateService(ctx context.Context, input *ServiceInput) (*entity.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	svc := &entity.Service{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *ServiceInput) (*entity.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	svc.Name = input.Name
	svc.Price = input.Price

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}

	count, err := s.transactionRepo.CountByServiceID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return s.serviceRepo.Deactivate(ctx, id)
	}

	return s.serviceRepo.Delete(ctx, id)
}

func (s *CatalogService) ListServices(ctx context.Context, params *repository.ServiceFilterParams) (*pagination.PaginatedResult[entity.Service], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	services, total, err := s.serviceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(services,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
