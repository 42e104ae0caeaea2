package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/prepitus/college-chances-api/pkg/errors"
)

// Envelope is the wire contract shared by every endpoint: a success flag,
// a human-readable message, and an optional data payload. The error field
// carries internal detail and is only populated outside production.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK sends a 200 with the given message and payload.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Fail sends a failure envelope with an explicit status and message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// Error converts err into the failure envelope. When exposeDetail is set
// (non-production mode) the underlying cause of 5xx errors is echoed in
// the error field; 4xx messages are already user-facing and never carry
// internal detail.
func Error(c *gin.Context, err error, exposeDetail bool) {
	appErr := appErrors.FromError(err)
	envelope := Envelope{Success: false, Message: appErr.Message}
	if exposeDetail && appErr.Status >= http.StatusInternalServerError && appErr.Err != nil {
		envelope.Error = appErr.Err.Error()
	}
	c.JSON(appErr.Status, envelope)
}
