// Package database runs schema migrations against Postgres. Migration files
// are embedded into the binary and tracked in a schema_migrations table so
// each one runs exactly once.
package database

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrator applies pending SQL migrations in filename order.
type Migrator struct {
	pool *pgxpool.Pool
	fsys fs.FS
}

func NewMigrator(pool *pgxpool.Pool, fsys fs.FS) *Migrator {
	return &Migrator{pool: pool, fsys: fsys}
}

// RunMigrations applies every .sql file not yet recorded in
// schema_migrations, alphabetically. Files with "reset" in the name are
// never run automatically.
func (m *Migrator) RunMigrations(ctx context.Context) error {
	log.Println("[Migrator] Starting database migrations...")

	if err := m.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	applied, err := m.appliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("reading applied migrations: %w", err)
	}

	entries, err := fs.ReadDir(m.fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	run := 0
	for _, filename := range files {
		if strings.Contains(filename, "reset") {
			log.Printf("[Migrator] Skipping %s (reset script)", filename)
			continue
		}
		if applied[filename] {
			continue
		}

		content, err := fs.ReadFile(m.fsys, filename)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", filename, err)
		}

		log.Printf("[Migrator] Running %s", filename)
		if _, err := m.pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("running migration %s: %w", filename, err)
		}
		if err := m.recordMigration(ctx, filename); err != nil {
			return fmt.Errorf("recording migration %s: %w", filename, err)
		}
		run++
	}

	if run > 0 {
		log.Printf("[Migrator] Applied %d new migration(s)", run)
	} else {
		log.Println("[Migrator] Database is up to date")
	}
	return nil
}

func (m *Migrator) createMigrationsTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

func (m *Migrator) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	applied := make(map[string]bool)

	rows, err := m.pool.Query(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, err
		}
		applied[filename] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) recordMigration(ctx context.Context, filename string) error {
	_, err := m.pool.Exec(ctx, `
		INSERT INTO schema_migrations (filename)
		VALUES ($1)
		ON CONFLICT (filename) DO NOTHING
	`, filename)
	return err
}
