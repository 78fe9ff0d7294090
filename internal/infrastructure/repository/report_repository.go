package repository

import (
	"context"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	domainRepo "github.com/roofworks/exterior-cleaners-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Report, error) {
	var reports []entity.Report
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date_created DESC").
		Find(&reports).Error
	return reports, err
}
