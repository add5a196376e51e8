package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// queryInt reads an integer query parameter. Missing or malformed values
// fall back to def rather than failing the request.
func queryInt(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}
