// Package output mirrors the pipeline tables into Postgres for downstream
// SQL consumers. It is an optional sink; the parquet files stay the source
// of truth.
package output

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/restunugroho/demand-forecast/internal/models"
)

type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(ctx context.Context, url string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

func (p *PostgresSink) CreateTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS order_events (
			order_id    TEXT NOT NULL,
			outlet_name TEXT,
			location    TEXT,
			menu_item   TEXT,
			order_type  TEXT,
			status      TEXT NOT NULL,
			ts          TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS hourly_demand (
			location TEXT NOT NULL,
			hour     TIMESTAMPTZ NOT NULL,
			demand   BIGINT NOT NULL,
			PRIMARY KEY (location, hour)
		)`,
	}
	for _, q := range queries {
		if _, err := p.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (p *PostgresSink) BulkInsertOrderEvents(ctx context.Context, events []models.OrderEvent) error {
	_, err := p.pool.CopyFrom(
		ctx,
		pgx.Identifier{"order_events"},
		[]string{"order_id", "outlet_name", "location", "menu_item", "order_type", "status", "ts"},
		pgx.CopyFromSlice(len(events), func(i int) ([]interface{}, error) {
			ev := events[i]
			return []interface{}{
				ev.OrderID,
				ev.OutletName,
				ev.Location,
				ev.MenuItem,
				ev.OrderType,
				ev.Status,
				time.Unix(ev.Timestamp, 0).UTC(),
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy order events: %w", err)
	}
	return nil
}

func (p *PostgresSink) BulkInsertDemand(ctx context.Context, records []models.DemandRecord) error {
	_, err := p.pool.CopyFrom(
		ctx,
		pgx.Identifier{"hourly_demand"},
		[]string{"location", "hour", "demand"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{
				r.Location,
				r.HourTime(),
				r.Demand,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy demand records: %w", err)
	}
	return nil
}

func (p *PostgresSink) Close() {
	p.pool.Close()
}
