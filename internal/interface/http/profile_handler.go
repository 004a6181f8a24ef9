package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growthpoints/internal/application"
	"github.com/oksasatya/growthpoints/internal/domain/entity"
	"github.com/oksasatya/growthpoints/internal/interface/middleware"
	"github.com/oksasatya/growthpoints/pkg/response"
)

type ProfileHandler struct {
	Svc *application.ProfileService
}

func NewProfileHandler(svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{Svc: svc}
}

type profileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func toProfileResponse(p *entity.Profile) profileResponse {
	return profileResponse{ID: p.ID, Email: p.Email, Points: p.Points, CreatedAt: p.CreatedAt}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetProfile(c.Request.Context(), middleware.Bearer(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toProfileResponse(p))
}

// Ensure handles POST /api/profile, creating the caller's profile on first call.
func (h *ProfileHandler) Ensure(c *gin.Context) {
	p, err := h.Svc.EnsureProfile(c.Request.Context(), middleware.Bearer(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toProfileResponse(p))
}
