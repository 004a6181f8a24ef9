package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/growthpoints/internal/interface/http"
	"github.com/oksasatya/growthpoints/internal/interface/middleware"
)

// ChatModule serves POST /api/chat, limited per client IP since the
// endpoint takes no credential.
type ChatModule struct {
	Handler *handlers.ChatHandler
	Redis   *redis.Client
	Limit   int // per minute
}

func NewChatModule(h *handlers.ChatHandler, rdb *redis.Client, limit int) *ChatModule {
	return &ChatModule{Handler: h, Redis: rdb, Limit: limit}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, m.Limit, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/chat", rl, m.Handler.Relay)
}
