package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CtxBearerKey holds the raw bearer credential of the request.
const CtxBearerKey = "bearer_token"

// BearerToken copies the credential from "Authorization: Bearer <token>" into
// the Gin context. It never rejects: services decide what a missing or bad
// credential means, so a request without one still reaches the handler.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxBearerKey, parseBearer(c.GetHeader("Authorization")))
		c.Next()
	}
}

// Bearer returns the credential stored by BearerToken, reading the header
// directly when the middleware did not run.
func Bearer(c *gin.Context) string {
	if v, ok := c.Get(CtxBearerKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return parseBearer(c.GetHeader("Authorization"))
}

func parseBearer(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
