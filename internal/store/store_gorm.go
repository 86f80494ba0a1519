package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"swisstd/internal/swiss"
)

// SectionRecord is the GORM row for a single Section: the scalar
// lifecycle fields are real columns, and the player roster/round
// history — both open-ended, nested structures — are stored as JSON
// in a single column each, the same way the teacher's Tournament
// record carries PlayersData/RoundsData.
type SectionRecord struct {
	ID            uuid.UUID `gorm:"primaryKey"`
	Name          string    `gorm:"unique;not null"`
	USCFMode      bool
	PlannedRounds int
	Locked        bool
	Config        json.RawMessage `gorm:"column:config;type:json"`
	PlayersData   json.RawMessage `gorm:"column:players;type:json"`
	RoundsData    json.RawMessage `gorm:"column:rounds;type:json"`
	EventsData    json.RawMessage `gorm:"column:events;type:json"`
}

// GormStore persists Sections to SQLite via GORM.
type GormStore struct {
	db *gorm.DB
}

// DBPath mirrors the teacher's GetDBPath: a per-user config directory
// holding a single SQLite file, created with owner-only permissions.
func DBPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	appDataDir := filepath.Join(configDir, "swisstd-data")
	if err := os.MkdirAll(appDataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create application data directory: %w", err)
	}
	return filepath.Join(appDataDir, "swisstd.db"), nil
}

// OpenGormStore opens (creating if necessary) the SQLite database at
// dbPath and migrates the SectionRecord table.
func OpenGormStore(dbPath string) (*GormStore, error) {
	log.Printf("store: opening database at %s", dbPath)
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.Exec("PRAGMA foreign_keys = ON;")
	db.Exec("PRAGMA secure_delete = ON;")

	if err := db.AutoMigrate(&SectionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate section records: %w", err)
	}
	return &GormStore{db: db}, nil
}

// DB exposes the underlying *gorm.DB so collaborators sharing the same
// database file (internal/auth) can attach their own models.
func (g *GormStore) DB() *gorm.DB { return g.db }

func (g *GormStore) Save(ctx context.Context, s *swiss.Section) error {
	players, err := json.Marshal(s.Players)
	if err != nil {
		return err
	}
	rounds, err := json.Marshal(s.Rounds)
	if err != nil {
		return err
	}
	cfg, err := json.Marshal(s.Config)
	if err != nil {
		return err
	}
	events, err := json.Marshal(s.Events)
	if err != nil {
		return err
	}

	var record SectionRecord
	result := g.db.WithContext(ctx).Where("name = ?", s.Name).First(&record)
	if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
		return fmt.Errorf("querying section %q: %w", s.Name, result.Error)
	}
	if result.Error == gorm.ErrRecordNotFound {
		record.ID = uuid.New()
	}

	record.Name = s.Name
	record.USCFMode = s.USCFMode
	record.PlannedRounds = s.PlannedRounds
	record.Locked = s.Locked
	record.Config = cfg
	record.PlayersData = players
	record.RoundsData = rounds
	record.EventsData = events

	if err := g.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("saving section %q: %w", s.Name, err)
	}
	return nil
}

func (g *GormStore) Load(ctx context.Context, name string) (*swiss.Section, error) {
	var record SectionRecord
	result := g.db.WithContext(ctx).Where("name = ?", name).First(&record)
	if result.Error == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		return nil, fmt.Errorf("loading section %q: %w", name, result.Error)
	}

	s := &swiss.Section{
		Name:          record.Name,
		USCFMode:      record.USCFMode,
		PlannedRounds: record.PlannedRounds,
		Locked:        record.Locked,
	}
	if len(record.Config) > 0 {
		if err := json.Unmarshal(record.Config, &s.Config); err != nil {
			return nil, fmt.Errorf("decoding config for %q: %w", name, err)
		}
	}
	if len(record.PlayersData) > 0 {
		if err := json.Unmarshal(record.PlayersData, &s.Players); err != nil {
			return nil, fmt.Errorf("decoding players for %q: %w", name, err)
		}
	}
	if len(record.RoundsData) > 0 {
		if err := json.Unmarshal(record.RoundsData, &s.Rounds); err != nil {
			return nil, fmt.Errorf("decoding rounds for %q: %w", name, err)
		}
	}
	if len(record.EventsData) > 0 {
		if err := json.Unmarshal(record.EventsData, &s.Events); err != nil {
			return nil, fmt.Errorf("decoding events for %q: %w", name, err)
		}
	}
	if s.Players == nil {
		s.Players = make(map[swiss.PlayerID]*swiss.Player)
	}
	return s, nil
}

func (g *GormStore) List(ctx context.Context) ([]string, error) {
	var records []SectionRecord
	if err := g.db.WithContext(ctx).Select("name").Find(&records).Error; err != nil {
		return nil, err
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names, nil
}

func (g *GormStore) Delete(ctx context.Context, name string) error {
	return g.db.WithContext(ctx).Where("name = ?", name).Delete(&SectionRecord{}).Error
}
