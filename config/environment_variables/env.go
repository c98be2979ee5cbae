package environment_variables

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"menlo.ai/state-user-api/app/utils/logger"
	"menlo.ai/state-user-api/config"
)

var durationType = reflect.TypeOf(time.Duration(0))

// reloadMu serializes LoadFromEnv against readers on the request path.
var reloadMu sync.RWMutex

type EnvironmentVariable struct {
	HTTP_PORT               int
	LOG_LEVEL               string
	DB_POSTGRESQL_WRITE_DSN string
	DB_POSTGRESQL_READ1_DSN string
	ALLOWED_CORS_HOSTS      []string
	// Redis configuration
	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       int
	// State user lookups
	STATE_USER_CACHE_TTL time.Duration
	STATE_USER_SEED_FILE string
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	reloadMu.Lock()
	defer reloadMu.Unlock()

	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			logger.GetLogger().Warnf("Missing SYSENV: %s", envKey)
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Int:
			intV, err := strconv.Atoi(envValue)
			if err != nil {
				logger.GetLogger().Errorf("Invalid int value for %s: %s", envKey, envValue)
			} else {
				v.Field(i).SetInt(int64(intV))
			}
		case reflect.Int64:
			if field.Type != durationType {
				logger.GetLogger().Errorf("Unsupported int64 type for %s", envKey)
				continue
			}
			d, err := time.ParseDuration(envValue)
			if err != nil {
				logger.GetLogger().Errorf("Invalid duration value for %s: %s", envKey, envValue)
			} else {
				v.Field(i).SetInt(int64(d))
			}
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(envValue)
			if err != nil {
				logger.GetLogger().Errorf("Invalid boolean value for %s: %s", envKey, envValue)
			} else {
				v.Field(i).SetBool(boolVal)
			}
		case reflect.Slice:
			if v.Field(i).Type().Elem().Kind() == reflect.String {
				entries := strings.Split(envValue, ",")
				v.Field(i).Set(reflect.ValueOf(entries))
			} else {
				logger.GetLogger().Errorf("Unsupported slice type for %s", field.Name)
			}
		default:
			logger.GetLogger().Errorf("Unsupported field type: %s", field.Name)
		}
	}
	if ev.LOG_LEVEL != "" {
		logger.SetLevel(ev.LOG_LEVEL)
	}
	config.MarkEnvReloaded()
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}

// StateUserCacheTTL is safe to call while the cron job reloads the environment.
func StateUserCacheTTL() time.Duration {
	reloadMu.RLock()
	defer reloadMu.RUnlock()
	return EnvironmentVariables.STATE_USER_CACHE_TTL
}

// AllowedCorsHosts returns a copy that later reloads cannot mutate.
func AllowedCorsHosts() []string {
	reloadMu.RLock()
	defer reloadMu.RUnlock()
	hosts := make([]string, len(EnvironmentVariables.ALLOWED_CORS_HOSTS))
	copy(hosts, EnvironmentVariables.ALLOWED_CORS_HOSTS)
	return hosts
}
