package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"menlo.ai/state-user-api/config"
)

type V1Route struct{}

func NewV1Route() *V1Route {
	return &V1Route{}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
}

// GetVersion godoc
// @Summary     Get API build version
// @Description Returns the current build version of the API server.
// @Tags        Server API
// @Produce     json
// @Success     200 {object} map[string]string "version info"
// @Router      /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":         config.ServiceName,
		"version":         config.Version,
		"env_reloaded_at": config.EnvReloadedAt(),
	})
}
