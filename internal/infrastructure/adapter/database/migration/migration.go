package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migration is one schema step, applied inside a transaction
type Migration struct {
	Version     string
	Description string
	Up          func(tx *gorm.DB) error
}

// Migrations lists every schema step in the order it must be applied
var Migrations = []Migration{
	{
		Version:     "1.0.0",
		Description: "Create sleep_records",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&model.SleepRecord{})
		},
	},
	{
		Version:     "1.1.0",
		Description: "Index sleep_records for newest-first listing",
		Up: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE INDEX IF NOT EXISTS idx_sleep_records_recent
				ON sleep_records (recorded_at DESC, id DESC)
			`).Error
		},
	},
}

// CurrentSchemaVersion is the version of the newest migration
var CurrentSchemaVersion = Migrations[len(Migrations)-1].Version

// MigrationManager applies pending migrations and records them in migration_versions
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
	now    func() time.Time
}

// NewMigrationManager creates a new migration manager. now stamps applied versions.
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, now func() time.Time) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
		now:    now,
	}
}

// MigrateAll applies every migration newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	steps, err := Pending(currentVersion)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Starting database migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	for _, step := range steps {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.Up(tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:   step.Version,
				AppliedAt: m.now(),
				Details:   step.Description,
			}).Error
		})
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": step.Version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", step.Version, err)
		}

		m.logger.Info("Migration applied", map[string]any{
			"version":     step.Version,
			"description": step.Description,
		})
	}

	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// Pending returns the migrations that follow currentVersion.
// An empty version means nothing has been applied yet.
func Pending(currentVersion string) ([]Migration, error) {
	if currentVersion == "" {
		return Migrations, nil
	}

	for i, step := range Migrations {
		if step.Version == currentVersion {
			return Migrations[i+1:], nil
		}
	}

	return nil, fmt.Errorf("unknown schema version %q, newest known is %s", currentVersion, CurrentSchemaVersion)
}
