package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every dashboard response wraps its payload in the same envelope so the
// frontend can branch on a single success flag.

func respondData(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payload,
	})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
