package repository

import (
	"context"
	"errors"
	"time"

	"tinylink/internal/config"
	"tinylink/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLStore implements StoreInterface on gorm/MySQL
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore creates a new MySQL store
func NewMySQLStore(cfg *config.MySQLConfig) *MySQLStore {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Link{}, &model.DedupEntry{}, &model.ClickEvent{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLStore{db: db}
}

// GetDB returns the GORM DB instance
func (s *MySQLStore) GetDB() *gorm.DB {
	return s.db
}

// GetByCode retrieves a link by short code, regardless of status. A short
// code binds to its long URL for life, so deactivated rows still occupy the
// code; the caller decides how lifecycle state is surfaced.
func (s *MySQLStore) GetByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	var link model.Link
	err := s.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// GetDedup retrieves the dedup index entry for a URL hash
func (s *MySQLStore) GetDedup(ctx context.Context, urlHash string) (*model.DedupEntry, error) {
	var entry model.DedupEntry
	err := s.db.WithContext(ctx).
		Where("url_hash = ?", urlHash).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// PutAtomic persists a link and its dedup entry in a single transaction.
// The dedup entry is written first: its primary key is the uniqueness gate
// that serializes racing creators of the same URL. dedup may be nil for
// custom-alias links, which bypass deduplication. Returns ErrConflict when
// either unique key is already taken.
func (s *MySQLStore) PutAtomic(ctx context.Context, link *model.Link, dedup *model.DedupEntry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dedup != nil {
			if err := tx.Create(dedup).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrConflict
				}
				return err
			}
		}
		if err := tx.Create(link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return nil
	})
}

// Deactivate soft-deletes a link and removes its dedup entry so the long
// URL can be shortened again. The short code itself is never reused.
func (s *MySQLStore) Deactivate(ctx context.Context, shortCode string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Link{}).
			Where("short_code = ?", shortCode).
			Update("status", model.StatusDisabled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("short_code = ?", shortCode).
			Delete(&model.DedupEntry{}).Error
	})
}

// ReleaseHash frees a dedup slot whose record went stale: the dedup row is
// removed and the link it pointed to is deactivated, clearing the way for a
// fresh mapping of the same long URL.
func (s *MySQLStore) ReleaseHash(ctx context.Context, urlHash string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry model.DedupEntry
		err := tx.Where("url_hash = ?", urlHash).First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // already released
			}
			return err
		}

		if err := tx.Model(&model.Link{}).
			Where("short_code = ?", entry.ShortCode).
			Update("status", model.StatusDisabled).Error; err != nil {
			return err
		}
		return tx.Where("url_hash = ?", urlHash).
			Delete(&model.DedupEntry{}).Error
	})
}

// SaveClickEvent persists a click event
func (s *MySQLStore) SaveClickEvent(ctx context.Context, event *model.ClickEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}

// CountClickEvents returns the number of persisted clicks for a short code
func (s *MySQLStore) CountClickEvents(ctx context.Context, shortCode string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.ClickEvent{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	return count, err
}

// DeleteExpired purges expired links together with any dedup entry that no
// longer points at a live link (including orphans left by interrupted
// writes). Returns the number of links removed.
func (s *MySQLStore) DeleteExpired(ctx context.Context) (int64, error) {
	now := time.Now()

	err := s.db.WithContext(ctx).Exec(
		`DELETE d FROM dedup_entries d
		 LEFT JOIN links l ON l.short_code = d.short_code
		 WHERE l.id IS NULL
		    OR l.status = ?
		    OR (l.expires_at IS NOT NULL AND l.expires_at < ?)`,
		model.StatusDisabled, now,
	).Error
	if err != nil {
		return 0, err
	}

	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&model.Link{})
	return result.RowsAffected, result.Error
}

// Close closes the database connection
func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
