package main

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"menlo.ai/state-user-api/app/domain/stateuser"
	"menlo.ai/state-user-api/app/infrastructure/cache"
	"menlo.ai/state-user-api/app/infrastructure/database/repository/transaction"
	"menlo.ai/state-user-api/app/utils/logger"
	"menlo.ai/state-user-api/app/utils/ptr"
	"menlo.ai/state-user-api/config"
	"menlo.ai/state-user-api/config/environment_variables"
)

type DataInitializer struct {
	repo  stateuser.StateUserRepository
	cache *cache.RedisCacheService
	db    *transaction.Database
}

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Address  string `yaml:"address"`
	Image    string `yaml:"image"`
	Username string `yaml:"username"`
}

// Install seeds local users. Production users come from the registration flow.
func (d *DataInitializer) Install(ctx context.Context) error {
	seedPath := environment_variables.EnvironmentVariables.STATE_USER_SEED_FILE
	if seedPath == "" || !config.IsDev() {
		return nil
	}
	users, err := loadSeedUsers(seedPath)
	if err != nil {
		return err
	}

	err = d.db.InTx(ctx, func(ctx context.Context) error {
		for _, u := range users {
			if err := d.repo.Upsert(ctx, u); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Address, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if d.cache != nil {
		for _, u := range users {
			if err := d.cache.Unlink(ctx, fmt.Sprintf(cache.StateUserKey, u.Address)); err != nil {
				logger.GetLogger().Warnf("failed to invalidate cached state user %s: %v", u.Address, err)
			}
		}
	}
	logger.GetLogger().Infof("seeded %d state users from %s", len(users), seedPath)
	return nil
}

func loadSeedUsers(path string) ([]*stateuser.StateUser, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var file seedFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	users := make([]*stateuser.StateUser, 0, len(file.Users))
	for i, entry := range file.Users {
		if entry.Address == "" {
			return nil, fmt.Errorf("seed user #%d has no address", i+1)
		}
		users = append(users, &stateuser.StateUser{
			Address:  stateuser.NormalizeAddress(entry.Address),
			Image:    ptr.NilIfEmpty(entry.Image),
			Username: ptr.NilIfEmpty(entry.Username),
		})
	}
	return users, nil
}
