package infra

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"yugen/internal/config"
	"yugen/internal/models/db_models"
)

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&db_models.Tag{},
		&db_models.POI{},
		&db_models.POIOpeningHour{},
		&db_models.Journey{},
		&db_models.JourneyDay{},
		&db_models.JourneyActivity{},
	}
}

// InitDatabase opens the configured backend and migrates the schema.
func InitDatabase(cfg *config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBBackend {
	case config.DatabasePostgres:
		db, err = gorm.Open(postgres.Open(cfg.PostgresURL), gcfg)
	case config.DatabaseSQLite:
		db, err = OpenSQLite(cfg.SQLitePath, gcfg)
	default:
		return nil, fmt.Errorf("unsupported database backend %q", cfg.DBBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBBackend, err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	logger.Info().Str("backend", string(cfg.DBBackend)).Msg("database ready")
	return db, nil
}

// OpenSQLite opens a sqlite database. ":memory:" is pinned to one connection
// so every query sees the same in-memory database.
func OpenSQLite(path string, gcfg *gorm.Config) (*gorm.DB, error) {
	if gcfg == nil {
		gcfg = &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	}
	db, err := gorm.Open(sqlite.Open(path), gcfg)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB, logger zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("get database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error().Err(err).Msg("close database connection")
	} else {
		logger.Info().Msg("database connection closed")
	}
}
