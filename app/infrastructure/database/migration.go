package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"menlo.ai/state-user-api/app/utils/logger"
)

type DatabaseMigration struct {
	gorm.Model
	Version string `gorm:"not null;uniqueIndex"`
}

type migrationStep struct {
	Version string
	Apply   func(tx *gorm.DB) error
}

// Steps run once each, in order, and are recorded in database_migration.
// They only create schema; user rows belong to the registration flow.
func schemaSteps() []migrationStep {
	return []migrationStep{
		{
			Version: "000001",
			Apply: func(tx *gorm.DB) error {
				for _, model := range SchemaRegistry {
					if err := tx.AutoMigrate(model); err != nil {
						return fmt.Errorf("failed to auto migrate schema %T: %w", model, err)
					}
				}
				return nil
			},
		},
	}
}

type DBMigrator struct {
	db *gorm.DB
}

func NewDBMigrator(db *gorm.DB) *DBMigrator {
	return &DBMigrator{
		db: db,
	}
}

func (d *DBMigrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	if err := d.db.WithContext(ctx).AutoMigrate(&DatabaseMigration{}); err != nil {
		return nil, fmt.Errorf("failed to create 'database_migration' table: %w", err)
	}
	var records []DatabaseMigration
	if err := d.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query migration records: %w", err)
	}
	applied := make(map[string]bool, len(records))
	for _, record := range records {
		applied[record.Version] = true
	}
	return applied, nil
}

func (d *DBMigrator) Migrate() error {
	ctx := context.Background()
	applied, err := d.appliedVersions(ctx)
	if err != nil {
		return err
	}
	for _, step := range schemaSteps() {
		if applied[step.Version] {
			continue
		}
		err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := step.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&DatabaseMigration{Version: step.Version}).Error
		})
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "75333e43-8157-4f0a-8e34-aa34e6e7c285").
				Errorf("migration %s failed: %v", step.Version, err)
			return fmt.Errorf("migration %s: %w", step.Version, err)
		}
		logger.GetLogger().Infof("applied migration %s", step.Version)
	}
	return nil
}
