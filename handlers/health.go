package handlers

import (
	"net/http"

	"travelease/config"
	"travelease/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.Health(config.GetEnv()))
}
