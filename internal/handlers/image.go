// internal/handlers/image.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type ImageHandler struct {
	catalogService *services.CatalogService
	queryService   *catalog.QueryService
}

func NewImageHandler(catalogService *services.CatalogService, queryService *catalog.QueryService) *ImageHandler {
	return &ImageHandler{
		catalogService: catalogService,
		queryService:   queryService,
	}
}

// POST /products/:id/images
func (h *ImageHandler) AttachImage(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateImageRequest
	if !bindAndValidate(c, &req) {
		return
	}

	image, err := h.catalogService.AttachImage(c.Request.Context(), productID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, newImageResponse(image))
}

// GET /products/:id/images?color_id=
func (h *ImageHandler) GetImages(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	colorID, ok := parseOptionalID(c, "color_id", c.Query("color_id"))
	if !ok {
		return
	}

	images, err := h.queryService.ListImages(c.Request.Context(), productID, catalog.ImageFilter{ColorID: colorID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, newImageResponses(images))
}

// POST /products/:id/upload-image (multipart: image, color_id)
func (h *ImageHandler) UploadProductImage(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	colorID, ok := parseOptionalID(c, "color_id", c.PostForm("color_id"))
	if !ok {
		return
	}

	image, err := h.catalogService.UploadProductImage(c.Request.Context(), productID, colorID, uploadedFile(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, newImageResponse(image))
}

// POST /upload-image (multipart: image)
func (h *ImageHandler) UploadFile(c *gin.Context) {
	result, err := h.catalogService.UploadFile(c.Request.Context(), uploadedFile(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, uploadResponse{URL: result.URL})
}
