package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
)

type stubTierRepo struct {
	tiers []entity.PricingTier
}

func (s *stubTierRepo) List(ctx context.Context) ([]entity.PricingTier, error) {
	return s.tiers, nil
}

func (s *stubTierRepo) GetByName(ctx context.Context, name string) (*entity.PricingTier, error) {
	for i := range s.tiers {
		if s.tiers[i].Name == name {
			return &s.tiers[i], nil
		}
	}
	return nil, nil
}

func newPricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &stubTierRepo{
		tiers: []entity.PricingTier{
			{ID: 1, Name: "Basic", Price: 150, MaxRoofArea: 60, MaxJobDuration: 2},
			{ID: 2, Name: "Standard", Price: 250, MaxRoofArea: 100, MaxJobDuration: 4},
			{ID: 3, Name: "Premium", Price: 400, MaxRoofArea: 200, MaxJobDuration: 8},
		},
	}
	h := NewPricingHandler(service.NewPricingService(repo, nil))

	router := gin.New()
	router.GET("/pricing", h.ListTiers)
	router.POST("/pricing", h.ResolvePrice)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type pricingTestResponse struct {
	Success bool `json:"success"`
	Data    struct {
		TierName string   `json:"tier_name"`
		Eligible bool     `json:"eligible"`
		Price    *float64 `json:"price"`
		Display  string   `json:"display"`
	} `json:"data"`
}

func TestListTiersEndpoint(t *testing.T) {
	router := newPricingRouter()

	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Success bool                 `json:"success"`
		Data    []entity.PricingTier `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Error("expected success response")
	}
	if len(body.Data) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(body.Data))
	}
	if body.Data[1].Name != "Standard" {
		t.Errorf("expected second tier Standard, got %s", body.Data[1].Name)
	}
}

func TestResolvePriceEndpoint(t *testing.T) {
	router := newPricingRouter()

	t.Run("eligible job", func(t *testing.T) {
		w := postForm(router, "/pricing", url.Values{
			"tier_name":    {"Standard"},
			"roof_area":    {"90"},
			"job_duration": {"3"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var body pricingTestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !body.Data.Eligible {
			t.Error("expected eligible result")
		}
		if body.Data.Price == nil || *body.Data.Price != 250 {
			t.Errorf("expected price 250, got %v", body.Data.Price)
		}
		if body.Data.Display != "250.00" {
			t.Errorf("expected display 250.00, got %q", body.Data.Display)
		}
	})

	t.Run("ineligible job returns N/A", func(t *testing.T) {
		w := postForm(router, "/pricing", url.Values{
			"tier_name":    {"Standard"},
			"roof_area":    {"150"},
			"job_duration": {"3"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var body pricingTestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Data.Eligible {
			t.Error("expected ineligible result")
		}
		if body.Data.Price != nil {
			t.Errorf("expected no price, got %v", *body.Data.Price)
		}
		if body.Data.Display != "N/A" {
			t.Errorf("expected display N/A, got %q", body.Data.Display)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		w := postForm(router, "/pricing", url.Values{
			"tier_name":    {"Platinum"},
			"roof_area":    {"10"},
			"job_duration": {"1"},
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("non-numeric metrics", func(t *testing.T) {
		w := postForm(router, "/pricing", url.Values{
			"tier_name":    {"Standard"},
			"roof_area":    {"large"},
			"job_duration": {"soon"},
		})

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected status 422, got %d", w.Code)
		}
	})

	t.Run("accepts JSON body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pricing",
			strings.NewReader(`{"tier_name":"Basic","roof_area":"50","job_duration":"1.5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var body pricingTestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Data.Display != "150.00" {
			t.Errorf("expected display 150.00, got %q", body.Data.Display)
		}
	})
}
