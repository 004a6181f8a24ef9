package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/internal/application"
	"github.com/oksasatya/growthpoints/internal/interface/middleware"
	"github.com/oksasatya/growthpoints/pkg/response"
	"github.com/oksasatya/growthpoints/pkg/validation"
)

// statusFor maps a service error kind to its HTTP status.
func statusFor(kind application.Kind) int {
	switch kind {
	case application.KindBadRequest:
		return http.StatusBadRequest
	case application.KindUnauthorized, application.KindInvalidToken:
		return http.StatusUnauthorized
	case application.KindForbidden:
		return http.StatusForbidden
	case application.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error": message} with the mapped status.
func writeError(c *gin.Context, err error) {
	response.Error(c, statusFor(application.KindOf(err)), application.MessageOf(err))
}

// badBody answers a request whose JSON could not be bound.
func badBody(c *gin.Context, logger *logrus.Logger, err error, message string) {
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.CtxRequestIDKey),
			"path":       c.FullPath(),
			"details":    validation.ToDetails(err),
		}).Debug("rejected request body")
	}
	response.Error(c, http.StatusBadRequest, message)
}
