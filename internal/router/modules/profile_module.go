package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/growthpoints/internal/interface/http"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
}

func NewProfileModule(h *handlers.ProfileHandler) *ProfileModule {
	return &ProfileModule{Handler: h}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", m.Handler.Get)
	rg.POST("/profile", m.Handler.Ensure)
}
