package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/pkg/document"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

type stubCustomerRepo struct {
	customers map[uint]*entity.Customer
}

func (s *stubCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return nil
}

func (s *stubCustomerRepo) GetByID(ctx context.Context, id uint) (*entity.Customer, error) {
	return s.customers[id], nil
}

func (s *stubCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type stubJobRepo struct {
	jobs map[uint]*entity.Job
}

func (s *stubJobRepo) Create(ctx context.Context, job *entity.Job) error {
	return nil
}

func (s *stubJobRepo) GetByID(ctx context.Context, id uint) (*entity.Job, error) {
	return s.jobs[id], nil
}

func (s *stubJobRepo) ListByUser(ctx context.Context, userID uint, params *pagination.PaginationParams) ([]entity.Job, int64, error) {
	return nil, 0, nil
}

type stubReportRepo struct{}

func (s *stubReportRepo) Create(ctx context.Context, report *entity.Report) error {
	return nil
}

func (s *stubReportRepo) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Report, error) {
	return nil, nil
}

func newReportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	customerRepo := &stubCustomerRepo{
		customers: map[uint]*entity.Customer{
			1: {ID: 1, Name: "Anna Virtanen", Address: "Kirkkotie 12, Espoo"},
		},
	}
	jobRepo := &stubJobRepo{
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

	svc := service.NewReportService(customerRepo, jobRepo, &stubReportRepo{}, document.NewPDFRenderer())
	h := NewReportHandler(svc)

	router := gin.New()
	router.GET("/report/:customer_id/:job_id", h.Download)
	return router
}

func TestReportDownload(t *testing.T) {
	router := newReportRouter()

	t.Run("streams a PDF attachment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/report/1/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("expected Content-Type application/pdf, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="report.pdf"` {
			t.Errorf("unexpected Content-Disposition: %q", cd)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Error("expected response body to start with the PDF magic bytes")
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/report/9999/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/report/1/9999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("non-numeric path params", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/report/abc/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("zero is not a valid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/report/0/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}
