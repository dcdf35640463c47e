package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chayanin-dev/chat-relay/pkg/response"
)

// writeError writes an error body with the status its title maps to
func writeError(c *gin.Context, body *response.ErrorBody) {
	c.JSON(response.StatusFor(body.Error), body)
}
