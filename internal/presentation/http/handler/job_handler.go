package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/dto/response"
	"github.com/roofworks/exterior-cleaners-api/pkg/pagination"
)

// JobHandler handles job HTTP requests
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type createJobRequest struct {
	CustomerName   string  `json:"customer_name" binding:"required,max=50"`
	Address        string  `json:"address" binding:"required,max=120"`
	RoofArea       float64 `json:"roof_area"`
	TileType       string  `json:"tile_type" binding:"required,max=50"`
	CleaningMethod string  `json:"cleaning_method" binding:"required,max=50"`
	TreatmentType  string  `json:"treatment_type" binding:"required,max=50"`
	DrainageType   string  `json:"drainage_type" binding:"required,max=50"`
	EstimatedDate  string  `json:"estimated_date" binding:"required"`
}

// Create handles POST /api/v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	estimatedDate, err := parseDate(req.EstimatedDate)
	if err != nil {
		response.BadRequest(c, "Invalid estimated date")
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &service.CreateJobInput{
		UserID:         *userID,
		CustomerName:   req.CustomerName,
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

	response.Created(c, "Job created successfully", job)
}

// Get handles GET /api/v1/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job retrieved successfully", job)
}

// List handles GET /api/v1/jobs
func (h *JobHandler) List(c *gin.Context) {
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

	result, err := h.jobService.ListJobs(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Jobs retrieved successfully", result)
}
