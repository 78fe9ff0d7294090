package repository

import (
	"context"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
)

// ReportRepository defines the interface for report record operations
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	// ListByCustomer returns the report records generated for a customer,
	// newest first.
	ListByCustomer(ctx context.Context, customerID uint) ([]entity.Report, error)
}
