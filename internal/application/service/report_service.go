package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/repository"
	"github.com/roofworks/exterior-cleaners-api/pkg/apperror"
	"github.com/roofworks/exterior-cleaners-api/pkg/document"
)

// ReportTitle is the fixed heading line of every customer report.
const ReportTitle = "Customer Report"

// estimatedDateLayout matches the storage-native datetime representation
// used in the rendered report.
const estimatedDateLayout = "2006-01-02 15:04:05"

// ReportService assembles customer reports and renders them for download
type ReportService struct {
	customerRepo repository.CustomerRepository
	jobRepo      repository.JobRepository
	reportRepo   repository.ReportRepository
	renderer     document.Renderer
}

// NewReportService creates a new report service
func NewReportService(
	customerRepo repository.CustomerRepository,
	jobRepo repository.JobRepository,
	reportRepo repository.ReportRepository,
	renderer document.Renderer,
) *ReportService {
	return &ReportService{
		customerRepo: customerRepo,
		jobRepo:      jobRepo,
		reportRepo:   reportRepo,
		renderer:     renderer,
	}
}

// Assemble fetches the customer and job and produces the report's field
// sequence. The order and labels of the fields, and the unit suffix on roof
// area, are a layout contract with the document renderer.
func (s *ReportService) Assemble(ctx context.Context, customerID, jobID uint) ([]document.Field, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Customer %d", customerID))
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Job %d", jobID))
	}

	fields := []document.Field{
		{Label: "Name", Value: customer.Name},
		{Label: "Address", Value: customer.Address},
		{Label: "Roof area", Value: strconv.FormatFloat(job.RoofArea, 'f', -1, 64) + " sq. m"},
		{Label: "Tile type", Value: job.TileType},
		{Label: "Cleaning method", Value: job.CleaningMethod},
		{Label: "Treatment type", Value: job.TreatmentType},
		{Label: "Drainage type", Value: job.DrainageType},
		{Label: "Estimated date of cleaning", Value: job.EstimatedDate.Format(estimatedDateLayout)},
	}

	return fields, nil
}

// Generate assembles the report for the given customer and job and renders
// it to document bytes. A report record is kept best-effort; a failed insert
// never blocks the download.
func (s *ReportService) Generate(ctx context.Context, customerID, jobID uint) ([]byte, error) {
	fields, err := s.Assemble(ctx, customerID, jobID)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(ReportTitle, fields)
	if err != nil {
		return nil, err
	}

	notes := fmt.Sprintf("Generated for job %d", jobID)
	record := &entity.Report{
		CustomerID: customerID,
		Notes:      &notes,
	}
	if err := s.reportRepo.Create(ctx, record); err != nil {
		log.Printf("Warning: failed to record report for customer %d: %v", customerID, err)
	}

	return data, nil
}

// ListCustomerReports returns the report records generated for a customer.
func (s *ReportService) ListCustomerReports(ctx context.Context, customerID uint) ([]entity.Report, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Customer %d", customerID))
	}

	return s.reportRepo.ListByCustomer(ctx, customerID)
}
