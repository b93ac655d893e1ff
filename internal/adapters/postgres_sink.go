package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS cpe_records (
	id BIGSERIAL PRIMARY KEY,
	category TEXT NOT NULL,
	product TEXT NOT NULL,
	version TEXT NOT NULL,
	vendor TEXT NOT NULL,
	date DATE NOT NULL,
	location TEXT NOT NULL,
	size_mb NUMERIC(7,2) NOT NULL
)`

var postgresColumns = []string{"category", "product", "version", "vendor", "date", "location", "size_mb"}

// PostgresSinkAdapter truncates cpe_records and bulk-loads the sample with COPY.
type PostgresSinkAdapter struct {
	DSN string
}

func NewPostgresSinkAdapter(dsn string) PostgresSinkAdapter {
	return PostgresSinkAdapter{DSN: strings.TrimSpace(dsn)}
}

func (a PostgresSinkAdapter) Name() string {
	return "postgres"
}

func (a PostgresSinkAdapter) Store(ctx context.Context, records []types.Record) error {
	if a.DSN == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("postgres dsn is empty")
	}
	rows := make([][]any, 0, len(records))
	for i, record := range records {
		row, err := postgresRow(record)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("record %d cannot be stored", i)).
				WithCause(err)
		}
		rows = append(rows, row)
	}

	conn, err := pgx.Connect(ctx, a.DSN)
	if err != nil {
		return postgresError("failed to connect to postgres", err)
	}
	defer conn.Close(context.WithoutCancel(ctx))
	pgxdecimal.Register(conn.TypeMap())

	tx, err := conn.Begin(ctx)
	if err != nil {
		return postgresError("failed to begin postgres transaction", err)
	}
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	if _, err := tx.Exec(ctx, postgresSchema); err != nil {
		return postgresError("failed to create postgres schema", err)
	}
	if _, err := tx.Exec(ctx, `TRUNCATE cpe_records RESTART IDENTITY`); err != nil {
		return postgresError("failed to truncate postgres table", err)
	}
	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"cpe_records"}, postgresColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return postgresError("failed to copy records into postgres", err)
	}
	if int(copied) != len(rows) {
		return postgresError("postgres copy was incomplete", fmt.Errorf("copied=%d expected=%d", copied, len(rows)))
	}
	if err := tx.Commit(ctx); err != nil {
		return postgresError("failed to commit postgres transaction", err)
	}
	return nil
}

func postgresRow(record types.Record) ([]any, error) {
	date, err := parseRecordDate(record.Date)
	if err != nil {
		return nil, err
	}
	return []any{
		record.Category,
		record.Product,
		record.Version,
		record.Vendor,
		date,
		record.Location,
		decimal.NewFromFloat(record.SizeMB).Round(2),
	}, nil
}

func postgresError(msg string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg).
		WithCause(cause)
}

var _ ports.SinkPort = PostgresSinkAdapter{}
