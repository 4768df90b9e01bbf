// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	queryService   *catalog.QueryService
}

func NewProductHandler(catalogService *services.CatalogService, queryService *catalog.QueryService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		queryService:   queryService,
	}
}

// GET /products?color_id=
func (h *ProductHandler) GetProducts(c *gin.Context) {
	colorID, ok := parseOptionalID(c, "color_id", c.Query("color_id"))
	if !ok {
		return
	}

	products, err := h.queryService.ListProducts(c.Request.Context(), catalog.ProductFilter{ColorID: colorID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, newProductDetailResponses(products))
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, newProductResponse(product))
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.queryService.GetProduct(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, newProductDetailResponse(product))
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, newProductResponse(product))
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
