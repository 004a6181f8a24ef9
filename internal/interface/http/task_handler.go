package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/internal/application"
	"github.com/oksasatya/growthpoints/internal/interface/middleware"
	"github.com/oksasatya/growthpoints/pkg/response"
)

type TaskHandler struct {
	Claims   *application.ClaimService
	Profiles *application.ProfileService
	Logger   *logrus.Logger
}

func NewTaskHandler(claims *application.ClaimService, profiles *application.ProfileService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Claims: claims, Profiles: profiles, Logger: logger}
}

type claimRequest struct {
	TaskID string `json:"taskId" binding:"required"`
}

type taskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

// Claim handles POST /api/tasks/claim.
func (h *TaskHandler) Claim(c *gin.Context) {
	token := middleware.Bearer(c)
	if token == "" {
		// no credential: nothing else is looked at
		response.Error(c, http.StatusUnauthorized, application.MsgUnauthorized)
		return
	}

	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, h.Logger, err, application.MsgMissingTaskID)
		return
	}

	if _, err := h.Claims.Claim(c.Request.Context(), token, req.TaskID); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK)
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Profiles.ListTasks(c.Request.Context(), middleware.Bearer(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := taskListResponse{Tasks: make([]taskResponse, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, taskResponse{
			ID:        t.ID,
			Title:     t.Title,
			Status:    string(t.Status),
			Points:    t.Points,
			CreatedAt: t.CreatedAt,
		})
	}
	response.JSON(c, http.StatusOK, out)
}
