package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/bizmate/backend/internal/application/finance"
)

// CreditHandler handles credit and payment API endpoints
type CreditHandler struct {
	BaseHandler
	creditService *financeapp.CreditService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(creditService *financeapp.CreditService) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

// RegisterRoutes registers credit routes
func (h *CreditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	credits := rg.Group("/credits")
	{
		credits.POST("", h.Create)
		credits.GET("", h.List)
		credits.GET("/:id", h.GetByID)
		credits.POST("/:id/payments", h.RecordPayment)
		credits.POST("/:id/cancel", h.Cancel)
		credits.DELETE("/:id", h.Delete)
	}
}

// Create records a new outstanding credit
func (h *CreditHandler) Create(c *gin.Context) {
	var req financeapp.CreateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.creditService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List lists credit records, optionally filtered
func (h *CreditHandler) List(c *gin.Context) {
	filter := financeapp.CreditListFilter{
		Status:      c.Query("status"),
		OverdueOnly: c.Query("overdue_only") == "true",
	}
	if raw := c.Query("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid company_id")
			return
		}
		filter.CompanyID = &companyID
	}

	responses, err := h.creditService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithTotal(c, responses, len(responses))
}

// GetByID retrieves a single credit record
func (h *CreditHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid credit ID")
		return
	}

	resp, err := h.creditService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// RecordPayment applies a payment to a credit record
func (h *CreditHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid credit ID")
		return
	}

	var req financeapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.creditService.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Cancel cancels a credit record
func (h *CreditHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid credit ID")
		return
	}

	resp, err := h.creditService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a credit record
func (h *CreditHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid credit ID")
		return
	}

	if err := h.creditService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
