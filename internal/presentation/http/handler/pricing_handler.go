package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/dto/response"
	"github.com/roofworks/exterior-cleaners-api/pkg/apperror"
)

// PricingHandler handles pricing HTTP requests
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// ListTiers handles GET /pricing
func (h *PricingHandler) ListTiers(c *gin.Context) {
	tiers, err := h.pricingService.ListTiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing tiers retrieved successfully", tiers)
}

// priceQuoteRequest carries the raw submission. Numeric fields arrive as
// strings so that malformed input is reported per-field instead of failing
// the whole bind.
type priceQuoteRequest struct {
	TierName    string `form:"tier_name" json:"tier_name"`
	RoofArea    string `form:"roof_area" json:"roof_area"`
	JobDuration string `form:"job_duration" json:"job_duration"`
}

// ResolvePrice handles POST /pricing
func (h *PricingHandler) ResolvePrice(c *gin.Context) {
	var req priceQuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var fieldErrors []apperror.FieldError

	roofArea, err := strconv.ParseFloat(req.RoofArea, 64)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "roof_area", Message: "roof area must be a number"})
	}

	jobDuration, err := strconv.ParseFloat(req.JobDuration, 64)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "job_duration", Message: "job duration must be a number"})
	}

	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	resolution, err := h.pricingService.ResolvePrice(c.Request.Context(), &service.ResolvePriceInput{
		TierName:    req.TierName,
		RoofArea:    roofArea,
		JobDuration: jobDuration,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	quote := response.NewPriceQuoteResponse(resolution.Tier.Name, resolution.Eligible, resolution.Price)
	response.OK(c, "Price resolved successfully", quote)
}
