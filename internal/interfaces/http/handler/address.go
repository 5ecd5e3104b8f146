package handler

import (
	"github.com/gin-gonic/gin"

	integrationapp "github.com/bizmate/backend/internal/application/integration"
)

// AddressHandler handles address search API endpoints
type AddressHandler struct {
	BaseHandler
	addressService *integrationapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *integrationapp.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// RegisterRoutes registers address search routes
func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	integration := rg.Group("/integration")
	{
		integration.GET("/address", h.Search)
	}
}

// Search looks up address candidates via the external provider
func (h *AddressHandler) Search(c *gin.Context) {
	mode := integrationapp.SearchMode(c.Query("mode"))
	query := c.Query("query")

	results, err := h.addressService.Search(c.Request.Context(), mode, query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithTotal(c, results, len(results))
}
