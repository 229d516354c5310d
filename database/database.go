// Package database открывает SQLite-хранилище задач и накатывает на него схему.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	// Регистрирует драйвер "sqlite" в database/sql.
	_ "modernc.org/sqlite"
)

const MemoryPath = ":memory:"

type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// Open открывает базу, проверяет соединение и применяет миграции.
// Соединение одно: SQLite всё равно сериализует запись.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	// :memory: живёт ровно столько, сколько соединение
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func buildDSN(cfg Config) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "foreign_keys(1)")
	if cfg.Path != MemoryPath {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	q.Add("_txlock", "immediate")

	return "file:" + cfg.Path + "?" + q.Encode()
}
