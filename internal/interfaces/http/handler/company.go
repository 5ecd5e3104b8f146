package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/bizmate/backend/internal/application/partner"
)

// CompanyHandler handles trading-partner API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *partnerapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *partnerapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// RegisterRoutes registers company routes
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.POST("", h.Create)
		companies.GET("", h.List)
		companies.GET("/:id", h.GetByID)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
		companies.POST("/:id/favorite", h.SetFavorite)
	}
}

// Create registers a new company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List lists companies, optionally filtered
func (h *CompanyHandler) List(c *gin.Context) {
	var filter partnerapp.CompanyListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, err := h.companyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithTotal(c, responses, len(responses))
}

// GetByID retrieves a single company
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	resp, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update applies partial changes to a company
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req partnerapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetFavoriteRequest toggles the favorite flag on a company
type SetFavoriteRequest struct {
	IsFavorite *bool `json:"is_favorite" binding:"required"`
}

// SetFavorite marks or unmarks a company as a favorite
func (h *CompanyHandler) SetFavorite(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req SetFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.SetFavorite(c.Request.Context(), id, *req.IsFavorite)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a company
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
