// internal/handlers/color.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type ColorHandler struct {
	catalogService *services.CatalogService
	queryService   *catalog.QueryService
}

func NewColorHandler(catalogService *services.CatalogService, queryService *catalog.QueryService) *ColorHandler {
	return &ColorHandler{
		catalogService: catalogService,
		queryService:   queryService,
	}
}

// GET /colors
func (h *ColorHandler) GetColors(c *gin.Context) {
	colors, err := h.queryService.ListColors(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, newColorResponses(colors))
}

// POST /colors
func (h *ColorHandler) CreateColor(c *gin.Context) {
	var req services.CreateColorRequest
	if !bindAndValidate(c, &req) {
		return
	}

	color, err := h.catalogService.CreateColor(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, newColorResponse(color))
}
