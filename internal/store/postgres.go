package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tweetwall/backend/internal/datenav"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS daily_tweets (
			date        VARCHAR(10) PRIMARY KEY,
			urls        JSONB NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := p.db.ExecContext(ctx, query)
	return err
}

func (p *Postgres) Read(ctx context.Context, date string) ([]string, error) {
	if !datenav.Valid(date) {
		return nil, ErrBadDate
	}
	var raw []byte
	err := p.db.QueryRowContext(ctx,
		"SELECT urls FROM daily_tweets WHERE date = $1", date,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return nil, fmt.Errorf("decode urls for %s: %w", date, err)
	}
	return urls, nil
}

// Upsert is a single atomic insert-or-replace keyed on the date column, so
// concurrent publishers for the same date cannot interleave an
// existence check with a write.
func (p *Postgres) Upsert(ctx context.Context, date string, urls []string) error {
	if !datenav.Valid(date) {
		return ErrBadDate
	}
	if urls == nil {
		urls = []string{}
	}
	payload, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO daily_tweets (date, urls)
		VALUES ($1, $2)
		ON CONFLICT (date)
		DO UPDATE SET urls = EXCLUDED.urls, created_at = CURRENT_TIMESTAMP`,
		date, payload,
	)
	return err
}

func (p *Postgres) Dates(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := p.db.QueryContext(ctx,
		"SELECT date FROM daily_tweets ORDER BY date DESC LIMIT $1", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
