package adapters

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	_ "github.com/mattn/go-sqlite3"

	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cpe_records (
	id INTEGER PRIMARY KEY,
	category TEXT NOT NULL,
	product TEXT NOT NULL,
	version TEXT NOT NULL,
	vendor TEXT NOT NULL,
	date TEXT NOT NULL,
	location TEXT NOT NULL,
	size_mb REAL NOT NULL
);`

// SQLiteSinkAdapter replaces the contents of the cpe_records table with
// the generated sample.
type SQLiteSinkAdapter struct {
	Path string
}

func NewSQLiteSinkAdapter(path string) SQLiteSinkAdapter {
	return SQLiteSinkAdapter{Path: strings.TrimSpace(path)}
}

func (a SQLiteSinkAdapter) Name() string {
	return "sqlite"
}

func (a SQLiteSinkAdapter) Store(ctx context.Context, records []types.Record) error {
	if a.Path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sqlite path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create sqlite directory").
			WithCause(err)
	}
	db, err := sql.Open("sqlite3", a.Path)
	if err != nil {
		return sqliteError("failed to open sqlite database", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return sqliteError("failed to create sqlite schema", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return sqliteError("failed to begin sqlite transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cpe_records`); err != nil {
		return sqliteError("failed to clear sqlite table", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cpe_records (category, product, version, vendor, date, location, size_mb)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return sqliteError("failed to prepare sqlite insert", err)
	}
	defer stmt.Close()
	for _, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.Category,
			record.Product,
			record.Version,
			record.Vendor,
			record.Date,
			record.Location,
			record.SizeMB,
		); err != nil {
			return sqliteError("failed to insert sqlite record", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return sqliteError("failed to commit sqlite transaction", err)
	}
	return nil
}

func sqliteError(msg string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg).
		WithCause(cause)
}

var _ ports.SinkPort = SQLiteSinkAdapter{}
