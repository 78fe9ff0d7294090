package repository

import (
	"context"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	// ListByUser returns the quotes saved by the given staff user.
	ListByUser(ctx context.Context, userID uint, params *pagination.PaginationParams) ([]entity.Quote, int64, error)
	// RecentByUser returns up to limit most recent quotes for the user.
	RecentByUser(ctx context.Context, userID uint, limit int) ([]entity.Quote, error)
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error)
	// Recent returns up to limit most recent orders.
	Recent(ctx context.Context, limit int) ([]entity.Order, error)
}
