package stateuser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"menlo.ai/state-user-api/app/domain/common"
	"menlo.ai/state-user-api/app/infrastructure/cache"
	"menlo.ai/state-user-api/app/utils/logger"
	"menlo.ai/state-user-api/config/environment_variables"
)

type StateUserService struct {
	repo  StateUserRepository
	cache StateUserCache
}

func NewService(repo StateUserRepository, cacheService StateUserCache) *StateUserService {
	return &StateUserService{
		repo:  repo,
		cache: cacheService,
	}
}

// GetStateUser resolves address to its profile, reading through the cache.
func (s *StateUserService) GetStateUser(ctx context.Context, address string) (*StateUser, error) {
	lowerAddress := NormalizeAddress(address)
	cacheKey := fmt.Sprintf(cache.StateUserKey, lowerAddress)

	if cachedUser := s.fromCache(ctx, cacheKey); cachedUser != nil {
		cacheLookups.WithLabelValues("hit").Inc()
		return cachedUser, nil
	}
	cacheLookups.WithLabelValues("miss").Inc()

	stored, err := s.repo.FindByAddress(ctx, lowerAddress)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			resolveErrors.WithLabelValues("not_found").Inc()
			return nil, common.NewError(err, "0b6a1f3e-58c4-4d0e-9f51-7a2c1d9e4b60")
		}
		resolveErrors.WithLabelValues("store").Inc()
		return nil, common.NewError(err, "4f9d2c7a-1e3b-4a8f-b6d5-0c9e8a7f6b21")
	}

	user := &StateUser{
		Address:  lowerAddress,
		Image:    stored.Image,
		Username: stored.Username,
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		resolveErrors.WithLabelValues("encode").Inc()
		return nil, common.NewError(err, "e3a7c5d1-9b2f-4c6e-8a0d-5f1b7e3c9a42")
	}
	status, err := s.cache.Set(ctx, cacheKey, string(userJSON), s.cacheTTL())
	if err != nil || status != CacheSetOK {
		resolveErrors.WithLabelValues("cache_update").Inc()
		logger.GetLogger().
			WithField("error_code", "8d2e6b4f-3a1c-4e7d-9b05-c6f2a8d1e317").
			Errorf("failed to cache state user %s: status=%q err=%v", lowerAddress, status, err)
		return nil, common.NewError(ErrCacheUpdate, "8d2e6b4f-3a1c-4e7d-9b05-c6f2a8d1e317")
	}

	return user, nil
}

// fromCache returns nil on a miss. Read failures and undecodable entries count as misses.
func (s *StateUserService) fromCache(ctx context.Context, cacheKey string) *StateUser {
	cachedJSON, found, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		logger.GetLogger().Warnf("failed to read %s from cache: %v", cacheKey, err)
		return nil
	}
	if !found || cachedJSON == "" {
		return nil
	}
	var cachedUser StateUser
	if err := json.Unmarshal([]byte(cachedJSON), &cachedUser); err != nil {
		logger.GetLogger().Warnf("discarding undecodable cache entry %s: %v", cacheKey, err)
		return nil
	}
	return &cachedUser
}

func (s *StateUserService) cacheTTL() time.Duration {
	if ttl := environment_variables.StateUserCacheTTL(); ttl > 0 {
		return ttl
	}
	return 0
}
