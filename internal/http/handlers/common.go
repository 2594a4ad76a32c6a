package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
)

// Every endpoint answers {ok:true, ...} or {ok:false, error:"..."}.

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}

func respondInvalid(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

// tripIDParam parses the :id path segment. A zero or malformed id answers
// 400 and returns false.
func tripIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondInvalid(c, "Invalid trip ID")
		return 0, false
	}
	return id, true
}
