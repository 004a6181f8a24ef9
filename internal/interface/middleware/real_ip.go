package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// ConfigureClientIP decides whose forwarding headers engine believes.
// X-Forwarded-For and X-Real-IP are honoured only when the direct peer is in
// proxies; with no proxies the socket address is the client IP. platform
// "cloudflare" additionally trusts CF-Connecting-IP, which is only safe when
// the origin is reachable through Cloudflare alone.
func ConfigureClientIP(engine *gin.Engine, proxies []string, platform string) error {
	if len(proxies) == 0 {
		proxies = nil
	}
	if err := engine.SetTrustedProxies(proxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}
	engine.RemoteIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "":
		engine.TrustedPlatform = ""
	case "cloudflare":
		engine.TrustedPlatform = gin.PlatformCloudflare
	default:
		return fmt.Errorf("unsupported trusted platform %q", platform)
	}
	return nil
}

// RealIP stores the client IP resolved by gin under "real_ip", so the rate
// limiter and the private-IP allowlist agree on who is calling.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, c.ClientIP())
		c.Next()
	}
}
