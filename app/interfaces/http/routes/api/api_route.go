package api

import (
	"github.com/gin-gonic/gin"
	stateuserroute "menlo.ai/state-user-api/app/interfaces/http/routes/api/stateuser"
)

type ApiRoute struct {
	stateUserRoute *stateuserroute.StateUserRoute
}

func NewApiRoute(stateUserRoute *stateuserroute.StateUserRoute) *ApiRoute {
	return &ApiRoute{
		stateUserRoute: stateUserRoute,
	}
}

func (apiRoute *ApiRoute) RegisterRouter(router gin.IRouter) {
	apiRouter := router.Group("/api")
	apiRoute.stateUserRoute.RegisterRouter(apiRouter)
}
