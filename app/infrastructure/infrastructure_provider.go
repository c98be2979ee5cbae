package infrastructure

import (
	"github.com/google/wire"
	"menlo.ai/state-user-api/app/domain/stateuser"
	"menlo.ai/state-user-api/app/infrastructure/cache"
)

var _ stateuser.StateUserCache = (*cache.RedisCacheService)(nil)

var InfrastructureProvider = wire.NewSet(
	cache.NewRedisCacheService,
	wire.Bind(new(stateuser.StateUserCache), new(*cache.RedisCacheService)),
)
