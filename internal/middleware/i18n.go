// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/i18n"
)

// I18nMiddleware stores the first supported language of Accept-Language
// under "lang", falling back to the default locale.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", negotiateLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// negotiateLanguage handles headers like "tr-TR,tr;q=0.9,en;q=0.8" in listed
// order; quality values are not re-sorted.
func negotiateLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag == "" {
			continue
		}
		base := strings.ToLower(strings.SplitN(strings.ReplaceAll(tag, "_", "-"), "-", 2)[0])
		if i18n.Supports(base) {
			return base
		}
	}
	return i18n.DefaultLanguage()
}
