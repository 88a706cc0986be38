package middlewares

import (
	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError writes the {success:false, message} error body and aborts the chain.
func HttpError(c *gin.Context, message string, status int) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
