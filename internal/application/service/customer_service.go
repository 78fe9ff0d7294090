package service

import (
	"context"
	"time"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/repository"
	"github.com/roofworks/exterior-cleaners-api/pkg/apperror"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name           string
	Address        string
	RoofArea       float64
	TileType       string
	CleaningMethod string
	TreatmentType  string
	DrainageType   string
	EstimatedDate  time.Time
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.RoofArea < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "roof_area", Message: "roof area must not be negative"},
		})
	}

	customer := &entity.Customer{
		Name:           input.Name,
		Address:        input.Address,
		RoofArea:       input.RoofArea,
		TileType:       input.TileType,
		CleaningMethod: input.CleaningMethod,
		TreatmentType:  input.TreatmentType,
		DrainageType:   input.DrainageType,
		EstimatedDate:  input.EstimatedDate,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional name/address search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// JobService handles job-related operations
type JobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// CreateJobInput represents the create job input. All fields are required.
type CreateJobInput struct {
	UserID         uint
	CustomerName   string
	Address        string
	RoofArea       float64
	TileType       string
	CleaningMethod string
	TreatmentType  string
	DrainageType   string
	EstimatedDate  time.Time
}

func (in *CreateJobInput) validate() []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	required := []struct {
		field string
		value string
	}{
		{"customer_name", in.CustomerName},
		{"address", in.Address},
		{"tile_type", in.TileType},
		{"cleaning_method", in.CleaningMethod},
		{"treatment_type", in.TreatmentType},
		{"drainage_type", in.DrainageType},
	}
	for _, r := range required {
		if r.value == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: r.field, Message: r.field + " is required"})
		}
	}
	if in.RoofArea < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "roof_area", Message: "roof area must not be negative"})
	}
	if in.EstimatedDate.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "estimated_date", Message: "estimated date is required"})
	}
	return fieldErrors
}

// CreateJob creates a new job owned by the given staff user
func (s *JobService) CreateJob(ctx context.Context, input *CreateJobInput) (*entity.Job, error) {
	if fieldErrors := input.validate(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	job := &entity.Job{
		CustomerName:   input.CustomerName,
		Address:        input.Address,
		RoofArea:       input.RoofArea,
		TileType:       input.TileType,
		CleaningMethod: input.CleaningMethod,
		TreatmentType:  input.TreatmentType,
		DrainageType:   input.DrainageType,
		EstimatedDate:  input.EstimatedDate,
		UserID:         input.UserID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, id uint) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	return job, nil
}

// ListJobs lists the jobs owned by a staff user
func (s *JobService) ListJobs(ctx context.Context, userID uint, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Job], error) {
	jobs, total, err := s.jobRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(jobs, pag), nil
}
