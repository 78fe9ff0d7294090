package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/dto/response"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

// QuoteHandler handles quote HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

type createQuoteRequest struct {
	Address        string  `json:"address" binding:"required,max=100"`
	RoofArea       float64 `json:"roof_area"`
	TileType       string  `json:"tile_type"`
	CleaningMethod string  `json:"cleaning_method"`
	TreatmentType  string  `json:"treatment_type"`
	DrainageType   string  `json:"drainage_type"`
	EstimatedDate  string  `json:"estimated_date"`
}

// Create handles POST /api/v1/quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	estimatedDate, err := parseDate(req.EstimatedDate)
	if err != nil {
		response.BadRequest(c, "Invalid estimated date")
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &service.CreateQuoteInput{
		UserID:         *userID,
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

	response.Created(c, "Quote saved successfully", quote)
}

// List handles GET /api/v1/quotes
func (h *QuoteHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.quoteService.ListQuotes(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	CustomerName string `json:"customer_name" binding:"required,max=50"`
	OrderDate    string `json:"order_date"`
}

// Create handles POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		response.BadRequest(c, "Invalid order date")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerName: req.CustomerName,
		OrderDate:    orderDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview handles GET /api/v1/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	overview, err := h.dashboardService.GetOverview(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", overview)
}
