package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope every endpoint returns: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody is the body of a successful mutation: {"success": true}.
type SuccessBody struct {
	Success bool `json:"success"`
}

// JSON writes data with status, defaulting to 200.
func JSON[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

// Success writes {"success": true}.
func Success(ctx *gin.Context, status int) {
	JSON(ctx, status, SuccessBody{Success: true})
}

// Error writes {"error": message}, defaulting to 400.
func Error(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorBody{Error: message})
}

// Abort writes the error body and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string) {
	Error(ctx, status, message)
	ctx.Abort()
}
