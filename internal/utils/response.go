// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/i18n"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func InternalErrorResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", i18n.T(lang, i18n.KeyInternalError), nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, catalog.KindValidationInput.MessageKey())
	ErrorResponse(c, http.StatusBadRequest, string(catalog.KindValidationInput), message, errors)
}

func TooManyRequestsResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", i18n.T(lang, i18n.KeyRateLimited), nil)
}

// HandleError writes the envelope for err. Violations become client errors
// with their kind as the code; anything else is a generic 500.
func HandleError(c *gin.Context, err error) {
	v, ok := catalog.AsViolation(err)
	if !ok {
		_ = c.Error(err)
		InternalErrorResponse(c)
		return
	}

	ErrorResponse(c, StatusForViolation(v), string(v.Kind), localizedMessage(c, v), v.Message)
}

func StatusForViolation(v *catalog.Violation) int {
	if v.Kind == catalog.KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func localizedMessage(c *gin.Context, v *catalog.Violation) string {
	lang := GetLangFromContext(c)
	if v.Kind == catalog.KindNotFound && v.Resource != "" {
		return i18n.T(lang, v.Kind.MessageKey(), i18n.T(lang, "resource."+v.Resource))
	}
	return i18n.T(lang, v.Kind.MessageKey())
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLanguage()
}
