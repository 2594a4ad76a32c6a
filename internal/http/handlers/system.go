package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "ok"})
}

// DBCheck probes connectivity with a trivial query against the trip table.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	var count int64
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM Trips").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "trips": count})
}
