package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gistify/internal/errortypes"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// respondError maps a pipeline failure to an HTTP response. Validation
// failures are caller-fixable and keep their message; all remote-side
// failures collapse into one retry-suggesting message.
func respondError(c *gin.Context, err error) {
	kind, ok := errortypes.KindOf(err)
	if !ok {
		kind = errortypes.KindRemote
	}

	status := http.StatusBadGateway
	message := "the summarization service failed, try again"
	if kind == errortypes.KindValidation {
		status = http.StatusBadRequest
		message = err.Error()
	}

	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: string(kind), Message: message},
	})
}
