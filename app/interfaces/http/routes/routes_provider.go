package routes

import (
	"github.com/google/wire"
	"menlo.ai/state-user-api/app/interfaces/http/routes/api"
	stateuserroute "menlo.ai/state-user-api/app/interfaces/http/routes/api/stateuser"
	v1 "menlo.ai/state-user-api/app/interfaces/http/routes/v1"
)

var RouteProvider = wire.NewSet(
	stateuserroute.NewStateUserRoute,
	api.NewApiRoute,
	v1.NewV1Route,
)
