// internal/handlers/variant.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type VariantHandler struct {
	catalogService *services.CatalogService
	queryService   *catalog.QueryService
}

func NewVariantHandler(catalogService *services.CatalogService, queryService *catalog.QueryService) *VariantHandler {
	return &VariantHandler{
		catalogService: catalogService,
		queryService:   queryService,
	}
}

// POST /products/:id/variants
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateVariantRequest
	if !bindAndValidate(c, &req) {
		return
	}

	variant, err := h.catalogService.CreateVariant(c.Request.Context(), productID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, newVariantResponse(variant))
}

// GET /products/:id/variants
func (h *VariantHandler) GetVariants(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variants, err := h.queryService.ListVariants(c.Request.Context(), productID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, newVariantDetailResponses(variants))
}

// PUT /variants/:id
func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateVariantRequest
	if !bindAndValidate(c, &req) {
		return
	}

	variant, err := h.catalogService.UpdateVariant(c.Request.Context(), id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, newVariantResponse(variant))
}

// DELETE /variants/:id
func (h *VariantHandler) DeleteVariant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteVariant(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
