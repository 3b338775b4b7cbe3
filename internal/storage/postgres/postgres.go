// Package postgres implements storage.Storage on PostgreSQL through a
// pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aanand-mishra/school-api/internal/config"
	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
)

// seq only exists to give FindAll a stable insertion order; the upsert
// never touches it.
const schema = `
CREATE TABLE IF NOT EXISTS students (
	seq    BIGSERIAL,
	id     TEXT    PRIMARY KEY,
	name   TEXT    NOT NULL,
	active BOOLEAN NOT NULL
)`

// Postgres is the pgx-backed storage.Storage.
type Postgres struct {
	pool *pgxpool.Pool
}

// New connects to cfg.Postgres.URL, verifies the connection and creates
// the students table.
func New(ctx context.Context, cfg *config.Config) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to parse database URL: %w", err)
	}

	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: create table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) FindByID(ctx context.Context, id string) (types.Student, error) {
	var s types.Student
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, active FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Student{}, storage.ErrNotFound
		}
		return types.Student{}, fmt.Errorf("postgres: find student %s: %w", id, err)
	}
	return s, nil
}

func (p *Postgres) FindAll(ctx context.Context) ([]types.Student, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, active FROM students ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list students: %w", err)
	}

	students, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.Student, error) {
		var s types.Student
		err := row.Scan(&s.ID, &s.Name, &s.Active)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: scan students: %w", err)
	}
	if students == nil {
		students = make([]types.Student, 0)
	}
	return students, nil
}

func (p *Postgres) Save(ctx context.Context, s types.Student) (types.Student, error) {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO students (id, name, active) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, active = EXCLUDED.active`,
		s.ID, s.Name, s.Active,
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("postgres: save student %s: %w", s.ID, err)
	}
	return s, nil
}

func (p *Postgres) Delete(ctx context.Context, s types.Student) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, s.ID); err != nil {
		return fmt.Errorf("postgres: delete student %s: %w", s.ID, err)
	}
	return nil
}

// Close closes the pool. It never fails.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
