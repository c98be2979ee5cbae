package main

import (
	"context"
	nethttp "net/http"
	_ "net/http/pprof"
	"time"

	_ "github.com/grafana/pyroscope-go/godeltaprof/http/pprof"

	"github.com/mileusna/crontab"
	"menlo.ai/state-user-api/app/domain/cron"
	"menlo.ai/state-user-api/app/infrastructure/cache"
	"menlo.ai/state-user-api/app/infrastructure/database"
	apphttp "menlo.ai/state-user-api/app/interfaces/http"
	"menlo.ai/state-user-api/app/utils/logger"
	"menlo.ai/state-user-api/config/environment_variables"
)

const migrationLockTTL = 2 * time.Minute

type Application struct {
	HttpServer      *apphttp.HttpServer
	CronService     *cron.CronService
	Cache           *cache.RedisCacheService
	DataInitializer *DataInitializer
}

func (application *Application) Start() {
	cronTab := crontab.New()
	background := context.Background()
	application.CronService.Start(background, cronTab)

	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	logger.GetLogger()
	environment_variables.EnvironmentVariables.LoadFromEnv()
}

// @title State User API
// @version 1.0
// @description Resolves wallet addresses to cached user profiles.
// @BasePath /
func main() {
	background := context.Background()

	// pprof and godeltaprof handlers are registered on DefaultServeMux by the imports above
	go func() {
		if err := nethttp.ListenAndServe("0.0.0.0:6060", nil); err != nil {
			logger.GetLogger().Errorf("pprof server failed: %v", err)
		}
	}()

	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	defer application.Cache.Close()

	err = cache.WithLock(application.Cache, cache.MigrationLockName, database.Migration, migrationLockTTL)
	if err != nil {
		panic(err)
	}
	err = application.DataInitializer.Install(background)
	if err != nil {
		panic(err)
	}
	application.Start()
}
