package main

import (
	"time"

	"menlo.ai/state-user-api/app/infrastructure/cache"
	"menlo.ai/state-user-api/app/infrastructure/database"
	_ "menlo.ai/state-user-api/app/infrastructure/database/dbschema"
	"menlo.ai/state-user-api/app/utils/logger"
	"menlo.ai/state-user-api/config/environment_variables"
)

// migrate applies pending schema steps without starting the API, e.g. as a deploy hook.
func main() {
	environment_variables.EnvironmentVariables.LoadFromEnv()

	if _, err := database.NewDB(); err != nil {
		logger.GetLogger().
			WithField("error_code", "db8499be-ae9d-46dc-ac59-1d2c42520e14").
			Fatalf("failed to open database: %v", err)
	}
	redisCache := cache.NewRedisCacheService()
	defer redisCache.Close()

	if err := cache.WithLock(redisCache, cache.MigrationLockName, database.Migration, 2*time.Minute); err != nil {
		logger.GetLogger().
			WithField("error_code", "75333e43-8157-4f0a-8e34-aa34e6e7c285").
			Fatalf("migration failed: %v", err)
	}
	logger.GetLogger().Info("database is up to date")
}
