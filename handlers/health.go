package handlers

import (
	"net/http"

	"guestevents/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest backing service snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	healthy := (status.Mongo == nil || *status.Mongo) && (status.Redis == nil || *status.Redis)

	code := http.StatusOK
	state := "ok"
	if !healthy {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "services": status})
}
