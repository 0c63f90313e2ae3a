package relational

import (
	"context"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wedshare/pkg/logger"
)

type Config struct {
	DSN               string
	ConnectionTimeout int64 `yaml:"connection_timeout_in_ms"`
	MaxOpenConns      int   `yaml:"max_open_conns"`
}

// Dialector picks the SQL driver from the DSN: postgres URLs and key/value
// DSNs go to PostgreSQL, sqlite://, file: and *.db DSNs to SQLite.
func Dialector(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		return sqlite.Open(dsn)
	default:
		return postgres.Open(dsn)
	}
}

// Connect opens the database, checks it is reachable and migrates the schema.
func Connect(cfg Config) (*gorm.DB, error) {
	return connect(Dialector(cfg.DSN), cfg)
}

func connect(dialector gorm.Dialector, cfg Config) (*gorm.DB, error) {
	logger.Info("connecting to relational database")

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	timeout := time.Duration(cfg.ConnectionTimeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	if err := db.AutoMigrate(&photoRow{}, &userRow{}); err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
