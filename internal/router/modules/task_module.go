package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/growthpoints/internal/interface/http"
	"github.com/oksasatya/growthpoints/internal/interface/middleware"
)

// TaskModule serves POST /api/tasks/claim and GET /api/tasks.
type TaskModule struct {
	Handler    *handlers.TaskHandler
	Redis      *redis.Client
	ClaimLimit int // per minute
}

func NewTaskModule(h *handlers.TaskHandler, rdb *redis.Client, claimLimit int) *TaskModule {
	return &TaskModule{Handler: h, Redis: rdb, ClaimLimit: claimLimit}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	claimLimiter := middleware.RateLimit(m.Redis, m.ClaimLimit, time.Minute, middleware.KeyByBearer(), nil)

	rg.POST("/tasks/claim", claimLimiter, m.Handler.Claim)
	rg.GET("/tasks", m.Handler.List)
}
