//go:build wireinject

package main

import (
	"github.com/google/wire"
	"menlo.ai/state-user-api/app/domain"
	"menlo.ai/state-user-api/app/infrastructure"
	"menlo.ai/state-user-api/app/infrastructure/database"
	"menlo.ai/state-user-api/app/infrastructure/database/repository"
	"menlo.ai/state-user-api/app/interfaces/http"
	"menlo.ai/state-user-api/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(DataInitializer), "*"),
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
