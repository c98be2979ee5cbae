package cron

import (
	"context"
	"time"

	"github.com/mileusna/crontab"
	"gorm.io/gorm"
	"menlo.ai/state-user-api/app/infrastructure/cache"
	"menlo.ai/state-user-api/app/utils/logger"
	"menlo.ai/state-user-api/config/environment_variables"
)

const healthCheckTimeout = 5 * time.Second

type CronService struct {
	cache *cache.RedisCacheService
	db    *gorm.DB
}

func NewCronService(cacheService *cache.RedisCacheService, db *gorm.DB) *CronService {
	return &CronService{
		cache: cacheService,
		db:    db,
	}
}

func (cs *CronService) Start(ctx context.Context, ctab *crontab.Crontab) {
	ctab.MustAddJob("* * * * *", func() {
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})
	ctab.MustAddJob("* * * * *", func() {
		cs.checkDependencies(ctx)
	})
}

func (cs *CronService) checkDependencies(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := cs.cache.HealthCheck(ctx); err != nil {
		logger.GetLogger().
			WithField("error_code", "b71c2e94-6d3a-4f08-a5e1-2c9d7f4b0e63").
			Errorf("redis health check failed: %v", err)
	}

	sqlDB, err := cs.db.DB()
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "3e5a9c1d-7f2b-4d84-b0c6-e1a8f3d5b792").
			Errorf("unable to get database handle: %v", err)
		return
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.GetLogger().
			WithField("error_code", "3e5a9c1d-7f2b-4d84-b0c6-e1a8f3d5b792").
			Errorf("database health check failed: %v", err)
	}
}
