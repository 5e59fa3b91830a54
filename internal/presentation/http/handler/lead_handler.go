package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/application/service"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/request"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/response"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"github.com/sangkips/leadflow-api/pkg/daterange"
	"github.com/sangkips/leadflow-api/pkg/pagination"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService      *service.LeadService
	dashboardService *service.DashboardService
	loc              *time.Location
}

// NewLeadHandler creates a new lead handler. Request dates are read in loc.
func NewLeadHandler(leadService *service.LeadService, dashboardService *service.DashboardService, loc *time.Location) *LeadHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &LeadHandler{
		leadService:      leadService,
		dashboardService: dashboardService,
		loc:              loc,
	}
}

// List handles listing leads for a period with optional search
func (h *LeadHandler) List(c *gin.Context) {
	var req request.LeadFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	sel, err := parseSelector(c, h.loc)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := &service.ListLeadsInput{
		Range:         sel,
		Search:        req.Search,
		SearchCountry: req.SearchCountry,
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	}
	if req.Status != "" {
		status, err := enum.ParseLeadStatus(req.Status)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		input.Status = &status
	}

	result := h.dashboardService.ListLeads(input)
	response.SuccessWithPagination(c, http.StatusOK, "Leads retrieved successfully", result)
}

// Get handles getting a lead by id
func (h *LeadHandler) Get(c *gin.Context) {
	lead, err := h.leadService.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", lead)
}

// Create handles creating a lead
func (h *LeadHandler) Create(c *gin.Context) {
	draft, ok := h.bindDraft(c)
	if !ok {
		return
	}

	lead, pending, err := h.leadService.Create(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondWrite(c, pending, http.StatusCreated, "Lead created successfully", lead)
}

// Update handles replacing every editable field of a lead
func (h *LeadHandler) Update(c *gin.Context) {
	draft, ok := h.bindDraft(c)
	if !ok {
		return
	}

	lead, pending, err := h.leadService.Replace(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondWrite(c, pending, http.StatusOK, "Lead updated successfully", lead)
}

// Delete handles deleting a lead
func (h *LeadHandler) Delete(c *gin.Context) {
	pending, err := h.leadService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	respondWrite(c, pending, http.StatusNoContent, "Lead deleted", nil)
}

// Sync handles reloading every lead from the store
func (h *LeadHandler) Sync(c *gin.Context) {
	if err := h.leadService.FetchAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leads synchronized", h.leadService.Status())
}

// SyncStatus handles reporting the state of the in-memory lead set
func (h *LeadHandler) SyncStatus(c *gin.Context) {
	response.OK(c, "Sync status retrieved successfully", h.leadService.Status())
}

func (h *LeadHandler) bindDraft(c *gin.Context) (*service.LeadDraft, bool) {
	var req request.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return nil, false
	}

	var draft service.LeadDraft
	if err := service.CopyLeadFields(&draft, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return nil, false
	}

	var fieldErrors []apperror.FieldError
	var err error
	if draft.CallDate, err = h.parseOptionalDate(req.CallDate); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "call_date", Message: err.Error()})
	}
	if draft.FirstPaymentDate, err = h.parseOptionalDate(req.FirstPaymentDate); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "first_payment_date", Message: err.Error()})
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return nil, false
	}

	return &draft, true
}

func (h *LeadHandler) parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := daterange.ParseDate(*value, h.loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
