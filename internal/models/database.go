package models

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database, migrates the schema and seeds the default
// users. The returned handle is passed explicitly to all model functions,
// there is no package level connection.
//
// path is the SQLite file to use. It is ignored when DB_HOST is set, in
// that case a PostgreSQL connection is configured from the DB_* environment
// variables.
func Connect(path string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var db *gorm.DB
	var err error

	if host, ok := os.LookupEnv("DB_HOST"); ok {
		log.Debug().Msg("DB_HOST is set, using postgresql")

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))

		db, err = gorm.Open(postgres.Open(dsn), config)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	} else {
		err = os.MkdirAll(filepath.Dir(path), os.ModePerm)
		if err != nil {
			return nil, fmt.Errorf("failed to create the database directory: %w", err)
		}

		dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)
		db, err = gorm.Open(sqlite.Open(dsn), config)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database object: %w", err)
		}

		// Get new connections after one hour
		sqlDB.SetConnMaxLifetime(time.Hour)

		// A single connection prevents SQLITE_BUSY errors
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.Callback().Query().After("*").Register("couple_budget:after_query_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Create().After("*").Register("couple_budget:after_create_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Update().After("*").Register("couple_budget:after_update_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Delete().After("*").Register("couple_budget:after_delete_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	err = seedUsers(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Budget{}, Expense{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
