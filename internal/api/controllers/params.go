package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the numeric :id path segment. A non-numeric id can never
// reference a resource, so callers treat ok=false as not found.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// currentUserID reads the identity set by the session middleware.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}
