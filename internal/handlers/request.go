// internal/handlers/request.go
package handlers

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/utils"
)

const uploadFieldName = "image"

// bindAndValidate decodes the JSON body into req and runs the validate tags.
// It writes the error response itself and reports whether the handler may
// continue.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.HandleError(c, catalog.ValidationInput("invalid request body: %v", err))
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.HandleError(c, catalog.ValidationInput("invalid %s: %q", name, c.Param(name)))
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalID parses an optional uuid value; an empty value is absent.
func parseOptionalID(c *gin.Context, name, value string) (*uuid.UUID, bool) {
	if value == "" {
		return nil, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		utils.HandleError(c, catalog.ValidationInput("invalid %s: %q", name, value))
		return nil, false
	}
	return &id, true
}

// uploadedFile returns the multipart "image" file, or nil when none was sent.
func uploadedFile(c *gin.Context) *multipart.FileHeader {
	header, err := c.FormFile(uploadFieldName)
	if err != nil {
		return nil
	}
	return header
}
