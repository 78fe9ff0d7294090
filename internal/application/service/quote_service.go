package service

import (
	"context"
	"time"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/repository"
	"github.com/roofworks/exterior-cleaners-api/pkg/apperror"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

// QuoteService handles quote-related operations
type QuoteService struct {
	quoteRepo repository.QuoteRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(quoteRepo repository.QuoteRepository) *QuoteService {
	return &QuoteService{quoteRepo: quoteRepo}
}

// CreateQuoteInput represents the create quote input. Quotes mirror the Job
// fields, pre-confirmation.
type CreateQuoteInput struct {
	UserID         uint
	Address        string
	RoofArea       float64
	TileType       string
	CleaningMethod string
	TreatmentType  string
	DrainageType   string
	EstimatedDate  time.Time
}

// CreateQuote saves a new quote for the given staff user
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	var fieldErrors []apperror.FieldError
	if input.Address == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "address", Message: "address is required"})
	}
	if input.RoofArea < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "roof_area", Message: "roof area must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	quote := &entity.Quote{
		UserID:         input.UserID,
		Address:        input.Address,
		RoofArea:       input.RoofArea,
		TileType:       input.TileType,
		CleaningMethod: input.CleaningMethod,
		TreatmentType:  input.TreatmentType,
		DrainageType:   input.DrainageType,
		EstimatedDate:  input.EstimatedDate,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// ListQuotes lists the quotes saved by a staff user
func (s *QuoteService) ListQuotes(ctx context.Context, userID uint, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Quote], error) {
	quotes, total, err := s.quoteRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// OrderService handles order-related operations
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerName string
	OrderDate    time.Time
}

// CreateOrder creates a new order
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		CustomerName: input.CustomerName,
		OrderDate:    input.OrderDate,
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders lists orders with pagination
func (s *OrderService) ListOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DashboardService aggregates the data shown on a staff user's dashboard
type DashboardService struct {
	quoteRepo repository.QuoteRepository
	orderRepo repository.OrderRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(quoteRepo repository.QuoteRepository, orderRepo repository.OrderRepository) *DashboardService {
	return &DashboardService{
		quoteRepo: quoteRepo,
		orderRepo: orderRepo,
	}
}

// DashboardOverview holds the user's recent quotes and the latest orders
type DashboardOverview struct {
	Quotes []entity.Quote `json:"quotes"`
	Orders []entity.Order `json:"orders"`
}

// GetOverview returns the dashboard overview for a staff user
func (s *DashboardService) GetOverview(ctx context.Context, userID uint) (*DashboardOverview, error) {
	quotes, err := s.quoteRepo.RecentByUser(ctx, userID, 10)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		Quotes: quotes,
		Orders: orders,
	}, nil
}
