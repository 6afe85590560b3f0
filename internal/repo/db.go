package repo

import (
	"ParaVault/internal/model"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// InitDB открывает БД по DSN и применяет миграции.
// DSN вида postgres://… или "host=… " открывается через PostgreSQL, всё остальное — SQLite (modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate создаёт/дополняет схему для всех моделей.
func Migrate(db *gorm.DB) error {
	// своя модель join-таблицы, чтобы вставлять связи напрямую с ON CONFLICT
	if err := db.SetupJoinTable(&model.Note{}, "Containers", &model.NoteContainer{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Container{},
		&model.Note{},
		&model.NoteContainer{},
		&model.RefreshSession{},
	)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func dialectorFor(dsn string) gorm.Dialector {
	if isPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// translateError приводит нарушение уникальности modernc/sqlite к gorm.ErrDuplicatedKey:
// штатный транслятор драйвера распознаёт только ошибки mattn/go-sqlite3.
func translateError(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", gorm.ErrDuplicatedKey, err)
		}
	}
	return err
}
