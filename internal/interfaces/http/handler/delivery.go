package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/bizmate/backend/internal/application/trade"
)

// DeliveryHandler handles delivery API endpoints
type DeliveryHandler struct {
	BaseHandler
	deliveryService *tradeapp.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(deliveryService *tradeapp.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryService: deliveryService,
	}
}

// RegisterRoutes registers delivery routes
func (h *DeliveryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	deliveries := rg.Group("/deliveries")
	{
		deliveries.POST("", h.Create)
		deliveries.GET("", h.List)
		deliveries.GET("/:id", h.GetByID)
		deliveries.POST("/:id/status", h.UpdateStatus)
		deliveries.DELETE("/:id", h.Delete)
	}
}

// Create schedules a new delivery
func (h *DeliveryHandler) Create(c *gin.Context) {
	var req tradeapp.CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.deliveryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List lists deliveries, optionally filtered
func (h *DeliveryHandler) List(c *gin.Context) {
	filter := tradeapp.DeliveryListFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	if raw := c.Query("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid company_id")
			return
		}
		filter.CompanyID = &companyID
	}

	responses, err := h.deliveryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithTotal(c, responses, len(responses))
}

// GetByID retrieves a single delivery
func (h *DeliveryHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid delivery ID")
		return
	}

	resp, err := h.deliveryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateStatus moves a delivery along its lifecycle
func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid delivery ID")
		return
	}

	var req tradeapp.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.deliveryService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a delivery
func (h *DeliveryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid delivery ID")
		return
	}

	if err := h.deliveryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
