package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/pkg/apperror"
	"github.com/roofworks/exterior-cleaners-api/pkg/document"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

type fakeCustomerRepo struct {
	customers map[uint]*entity.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uint) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type fakeJobRepo struct {
	jobs map[uint]*entity.Job
}

func (f *fakeJobRepo) Create(ctx context.Context, job *entity.Job) error {
	return nil
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id uint) (*entity.Job, error) {
	return f.jobs[id], nil
}

func (f *fakeJobRepo) ListByUser(ctx context.Context, userID uint, params *pagination.PaginationParams) ([]entity.Job, int64, error) {
	return nil, 0, nil
}

type fakeReportRepo struct {
	created []*entity.Report
}

func (f *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	f.created = append(f.created, report)
	return nil
}

func (f *fakeReportRepo) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Report, error) {
	return nil, nil
}

type fakeRenderer struct {
	title  string
	fields []document.Field
	out    []byte
}

func (f *fakeRenderer) Render(title string, fields []document.Field) ([]byte, error) {
	f.title = title
	f.fields = fields
	return f.out, nil
}

func newTestReportService(renderer document.Renderer) (*ReportService, *fakeReportRepo) {
	customerRepo := &fakeCustomerRepo{
		customers: map[uint]*entity.Customer{
			1: {ID: 1, Name: "Anna Virtanen", Address: "Kirkkotie 12, Espoo"},
		},
	}
	jobRepo := &fakeJobRepo{
		jobs: map[uint]*entity.Job{
			1: {
				ID:             1,
				CustomerName:   "Anna Virtanen",
				Address:        "Kirkkotie 12, Espoo",
				RoofArea:       45.5,
				TileType:       "Clay",
				CleaningMethod: "Soft wash",
				TreatmentType:  "Moss removal",
				DrainageType:   "Gutter",
				EstimatedDate:  time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC),
				UserID:         1,
			},
		},
	}
	reportRepo := &fakeReportRepo{}
	return NewReportService(customerRepo, jobRepo, reportRepo, renderer), reportRepo
}

func TestAssemble(t *testing.T) {
	svc, _ := newTestReportService(&fakeRenderer{})
	ctx := context.Background()

	t.Run("field order and labels", func(t *testing.T) {
		fields, err := svc.Assemble(ctx, 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []document.Field{
			{Label: "Name", Value: "Anna Virtanen"},
			{Label: "Address", Value: "Kirkkotie 12, Espoo"},
			{Label: "Roof area", Value: "45.5 sq. m"},
			{Label: "Tile type", Value: "Clay"},
			{Label: "Cleaning method", Value: "Soft wash"},
			{Label: "Treatment type", Value: "Moss removal"},
			{Label: "Drainage type", Value: "Gutter"},
			{Label: "Estimated date of cleaning", Value: "2026-05-12 09:30:00"},
		}

		if !reflect.DeepEqual(fields, want) {
			t.Errorf("field sequence mismatch:\ngot  %v\nwant %v", fields, want)
		}
	})

	t.Run("deterministic for same inputs", func(t *testing.T) {
		first, err := svc.Assemble(ctx, 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.Assemble(ctx, 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical field sequences for repeated assembly")
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		_, err := svc.Assemble(ctx, 9999, 1)
		if err == nil {
			t.Fatal("expected an error")
		}
		appErr := apperror.GetAppError(err)
		if appErr.Code != 404 {
			t.Errorf("expected status 404, got %d", appErr.Code)
		}
		if appErr.Message != "Customer 9999 not found" {
			t.Errorf("unexpected message: %q", appErr.Message)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		_, err := svc.Assemble(ctx, 1, 7)
		if err == nil {
			t.Fatal("expected an error")
		}
		appErr := apperror.GetAppError(err)
		if appErr.Code != 404 {
			t.Errorf("expected status 404, got %d", appErr.Code)
		}
		if appErr.Message != "Job 7 not found" {
			t.Errorf("unexpected message: %q", appErr.Message)
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("renders with fixed title", func(t *testing.T) {
		renderer := &fakeRenderer{out: []byte("rendered")}
		svc, reportRepo := newTestReportService(renderer)

		data, err := svc.Generate(context.Background(), 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "rendered" {
			t.Errorf("expected renderer output passed through, got %q", data)
		}
		if renderer.title != "Customer Report" {
			t.Errorf("expected title %q, got %q", "Customer Report", renderer.title)
		}
		if len(renderer.fields) != 8 {
			t.Errorf("expected 8 fields, got %d", len(renderer.fields))
		}
		if len(reportRepo.created) != 1 {
			t.Fatalf("expected 1 report record, got %d", len(reportRepo.created))
		}
		if reportRepo.created[0].CustomerID != 1 {
			t.Errorf("expected report record for customer 1, got %d", reportRepo.created[0].CustomerID)
		}
	})

	t.Run("missing customer aborts before rendering", func(t *testing.T) {
		renderer := &fakeRenderer{out: []byte("rendered")}
		svc, reportRepo := newTestReportService(renderer)

		_, err := svc.Generate(context.Background(), 42, 1)
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(reportRepo.created) != 0 {
			t.Errorf("expected no report record, got %d", len(reportRepo.created))
		}
	})
}
