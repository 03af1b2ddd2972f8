package middleware

import (
	"strings"

	"github.com/bitfantasy/nimo-saleslink/internal/shared/i18n"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Language 解析 Accept-Language，按权重排序后放入请求 context；格式错误时忽略，使用默认语言
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		if lang := acceptedLanguages(c.GetHeader("Accept-Language")); lang != "" {
			c.Request = c.Request.WithContext(i18n.WithLanguage(c.Request.Context(), lang))
		}
		c.Next()
	}
}

func acceptedLanguages(header string) string {
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}
	langs := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == language.Und {
			continue
		}
		langs = append(langs, tag.String())
	}
	return strings.Join(langs, ",")
}
