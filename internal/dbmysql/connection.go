package dbmysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"viztube/internal/config"
	"viztube/internal/logging"
)

// NewMySQL returns a GORM DB instance connected to MySQL with the schema
// migrated. Duplicate-key errors are translated to gorm.ErrDuplicatedKey.
func NewMySQL(cnf *config.Config) (*gorm.DB, error) {
	dsn := cnf.DSN()
	if cnf.Database.DatabaseName == "" {
		return nil, fmt.Errorf("MYSQL_DATABASE is not set")
	}

	level := logger.Warn
	if cnf.Server.IsDevelopment() {
		level = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logging.Info().Str("host", cnf.Database.Host).Str("database", cnf.Database.DatabaseName).Msg("connected to MySQL")
	return db, nil
}

// tableOptions pins a case-insensitive collation on tables we create, whatever
// the server default is.
const tableOptions = "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci"

// Migrate creates or updates every table, including the unique indexes the
// toggles rely on.
func Migrate(db *gorm.DB) error {
	return db.Set("gorm:table_options", tableOptions).AutoMigrate(
		&User{},
		&Video{},
		&Comment{},
		&Tweet{},
		&Like{},
		&Subscription{},
		&Playlist{},
		&PlaylistVideo{},
		&WatchHistory{},
	)
}
