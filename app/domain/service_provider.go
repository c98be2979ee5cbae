package domain

import (
	"github.com/google/wire"
	"menlo.ai/state-user-api/app/domain/cron"
	"menlo.ai/state-user-api/app/domain/stateuser"
)

var ServiceProvider = wire.NewSet(
	stateuser.NewService,
	cron.NewCronService,
)
