package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shared response shape of every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, data any, total int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Total: &total})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}
