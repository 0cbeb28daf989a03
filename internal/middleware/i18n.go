// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ashraf-Atef1/full-stack-task/internal/models"
)

// LanguageMiddleware resolves the request language and stores it in the gin
// context. Priority: lang/locale/l query param, then the Lang header, then
// Accept-Language. Anything outside the supported set collapses to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = c.Query("locale")
		}
		if lang == "" {
			lang = c.Query("l")
		}
		if lang == "" {
			lang = c.GetHeader("Lang")
		}
		if lang == "" {
			lang = fromAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if !models.IsSupportedLocale(lang) {
			lang = models.LocaleEnglish
		}

		c.Set("lang", lang)
		c.Next()
	}
}

// fromAcceptLanguage picks the first supported language out of an
// Accept-Language header like "ar-EG,ar;q=0.9,en;q=0.8".
func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		code := strings.ToLower(strings.TrimSpace(strings.Split(part, ";")[0]))
		switch {
		case strings.HasPrefix(code, models.LocaleArabic):
			return models.LocaleArabic
		case strings.HasPrefix(code, models.LocaleEnglish):
			return models.LocaleEnglish
		}
	}
	return ""
}
