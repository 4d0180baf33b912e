// Package sqlite snapshot local de las filas de categorías para trabajar sin red.
// El orden de las filas se conserva: el resolvedor desempata por orden de entrada.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // driver sqlite en Go puro

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CategorySource = (*Snapshot)(nil)

var schema = []string{`
CREATE TABLE IF NOT EXISTS categories (
	position    INTEGER PRIMARY KEY,
	id          TEXT NOT NULL,
	name        TEXT NOT NULL,
	slug        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	parent_id   TEXT NOT NULL DEFAULT ''
)`, `
CREATE TABLE IF NOT EXISTS snapshot_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`}

// Snapshot archivo SQLite con una copia de la tabla categories.
type Snapshot struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) el archivo de snapshot.
func Open(path string) (*Snapshot, error) {
	if path == "" {
		return nil, errors.New("sqlite: ruta de snapshot vacía")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create snapshot tables: %w", err)
		}
	}
	return &Snapshot{db: db, path: path}, nil
}

// Close libera el archivo.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Path ruta del archivo.
func (s *Snapshot) Path() string {
	return s.path
}

// Save reemplaza el contenido del snapshot por rows en una transacción.
func (s *Snapshot) Save(ctx context.Context, rows []entity.Category, takenAt time.Time) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO categories (position, id, name, slug, description, image, parent_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for i, c := range rows {
		if _, err := stmt.ExecContext(ctx, i, c.ID, c.Name, c.Slug, c.Description, c.Image, c.ParentID); err != nil {
			return fmt.Errorf("insert category %s: %w", c.ID, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (key, value) VALUES ('taken_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, takenAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	return tx.Commit()
}

// FetchCategories filas del snapshot en el orden en que se guardaron.
func (s *Snapshot) FetchCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, slug, description, image, parent_id FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TakenAt momento en que se guardó el snapshot; cero si nunca se guardó.
func (s *Snapshot) TakenAt(ctx context.Context) (time.Time, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key = 'taken_at'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read meta: %w", err)
	}
	return time.Parse(time.RFC3339, v)
}
