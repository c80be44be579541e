package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ReadinessChecker reports whether the backing store is connected.
type ReadinessChecker interface {
	Ready() bool
}

func NewHealthController(db ReadinessChecker) *HealthController {
	return &HealthController{db: db}
}

type HealthController struct {
	db ReadinessChecker
}

// Check always answers 200; a down database is reported in the body, not
// the status code, so the process stays routable while the store catches up.
func (ctrl *HealthController) Check(c *gin.Context) {
	db := "disconnected"
	if ctrl.db.Ready() {
		db = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"db":        db,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
