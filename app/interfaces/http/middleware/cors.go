package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"menlo.ai/state-user-api/config"
	"menlo.ai/state-user-api/config/environment_variables"
)

// isAllowedOrigin matches exact hosts and "*"-prefixed suffix patterns.
func isAllowedOrigin(origin string, allowedHosts []string) bool {
	if origin == "" {
		return false
	}
	for _, allowedHost := range allowedHosts {
		allowedHost = strings.TrimSpace(allowedHost)
		if suffix, ok := strings.CutPrefix(allowedHost, "*"); ok {
			if strings.HasSuffix(origin, suffix) {
				return true
			}
			continue
		}
		if allowedHost == origin {
			return true
		}
	}
	return false
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Header.Get("Origin")
		allowed := isAllowedOrigin(host, environment_variables.AllowedCorsHosts())
		if allowed || (config.IsDev() && host != "") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", host)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-Id")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
			c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")
			c.Writer.Header().Set("Vary", "Origin")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
