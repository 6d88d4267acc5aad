package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope wraps every JSON body the API returns.
type Envelope struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"ok"`
	Data    any    `json:"data"`
	Errors  any    `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, status int, data any, message string) {
	if message == "" {
		message = "Operation successful"
	}
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func Fail(c *gin.Context, status int, message string, errs any) {
	if message == "" {
		message = "Operation failed"
	}
	c.JSON(status, Envelope{Success: false, Message: message, Errors: errs})
}

// Abort writes a failure envelope and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}
