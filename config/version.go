package config

import (
	"strings"
	"sync"
	"time"
)

const ServiceName = "state-user-api"

// Version is stamped at build time with -ldflags "-X menlo.ai/state-user-api/config.Version=...".
var Version = "dev"

var (
	envReloadedMu sync.RWMutex
	envReloadedAt = time.Now()
)

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}

func MarkEnvReloaded() {
	envReloadedMu.Lock()
	defer envReloadedMu.Unlock()
	envReloadedAt = time.Now()
}

func EnvReloadedAt() time.Time {
	envReloadedMu.RLock()
	defer envReloadedMu.RUnlock()
	return envReloadedAt
}
