package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/dto/response"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

type createCustomerRequest struct {
	Name           string  `json:"name" binding:"required,max=80"`
	Address        string  `json:"address" binding:"required,max=120"`
	RoofArea       float64 `json:"roof_area"`
	TileType       string  `json:"tile_type"`
	CleaningMethod string  `json:"cleaning_method"`
	TreatmentType  string  `json:"treatment_type"`
	DrainageType   string  `json:"drainage_type"`
	EstimatedDate  string  `json:"estimated_date"`
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	estimatedDate, err := parseDate(req.EstimatedDate)
	if err != nil {
		response.BadRequest(c, "Invalid estimated date")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:           req.Name,
		Address:        req.Address,
		RoofArea:       req.RoofArea,
		TileType:       req.TileType,
		CleaningMethod: req.CleaningMethod,
		TreatmentType:  req.TreatmentType,
		DrainageType:   req.DrainageType,
		EstimatedDate:  estimatedDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	search := c.Query("search")

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// parseDate accepts either a date or a full datetime string.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
