package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pageforge/internal/blueprint"
	"pageforge/internal/hierarchy"
)

// SQLiteStore persists scope records and blueprint versions. It
// implements hierarchy.Store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS scope_records (
			scope TEXT NOT NULL,
			owner_id TEXT NOT NULL,
			id TEXT NOT NULL,
			settings JSON,
			reasoning TEXT,
			created_at TIMESTAMP,
			PRIMARY KEY (scope, owner_id)
		);`,
		`CREATE TABLE IF NOT EXISTS blueprints (
			document_id TEXT NOT NULL,
			version INTEGER NOT NULL,
			id TEXT NOT NULL,
			content JSON NOT NULL,
			generated_at TIMESTAMP,
			mode TEXT,
			inputs_hash TEXT,
			PRIMARY KEY (document_id, version)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_blueprints_doc ON blueprints(document_id);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// --- Scope records ---

func (s *SQLiteStore) GetScope(ctx context.Context, scope hierarchy.Scope, ownerID string) (*hierarchy.Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, settings, reasoning, created_at FROM scope_records WHERE scope = ? AND owner_id = ?",
		string(scope), ownerID)

	rec := hierarchy.Record{Scope: scope, OwnerID: ownerID}
	var settings []byte
	var createdAt time.Time
	if err := row.Scan(&rec.ID, &settings, &rec.Reasoning, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	rec.CreatedAt = createdAt
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &rec.Settings); err != nil {
			return nil, fmt.Errorf("corrupt %s settings for %s: %w", scope, ownerID, err)
		}
	}
	return &rec, nil
}

func (s *SQLiteStore) PutScope(ctx context.Context, rec *hierarchy.Record) error {
	settings, err := json.Marshal(rec.Settings)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scope_records (scope, owner_id, id, settings, reasoning, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(scope, owner_id) DO UPDATE SET
			id=excluded.id,
			settings=excluded.settings,
			reasoning=excluded.reasoning,
			created_at=excluded.created_at
	`, string(rec.Scope), rec.OwnerID, rec.ID, settings, rec.Reasoning, rec.CreatedAt)
	return err
}

// DeleteScope removes a scope record. Missing records are not an error;
// resolution falls back to the next scope up.
func (s *SQLiteStore) DeleteScope(ctx context.Context, scope hierarchy.Scope, ownerID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM scope_records WHERE scope = ? AND owner_id = ?", string(scope), ownerID)
	return err
}

// --- Blueprint versions ---

// SaveBlueprint stores a blueprint as the next version for its document
// and writes the assigned version back into bp. Concurrent saves land as
// distinct versions; no merge is attempted.
func (s *SQLiteStore) SaveBlueprint(ctx context.Context, bp *blueprint.Blueprint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var maxVersion sql.NullInt64
	row := tx.QueryRowContext(ctx,
		"SELECT MAX(version) FROM blueprints WHERE document_id = ?", bp.DocumentID)
	if err := row.Scan(&maxVersion); err != nil {
		return err
	}
	bp.Version = int(maxVersion.Int64) + 1

	content, err := blueprint.Marshal(bp)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO blueprints (document_id, version, id, content, generated_at, mode, inputs_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, bp.DocumentID, bp.Version, bp.ID, content, bp.Meta.GeneratedAt, bp.Meta.Mode, bp.Meta.InputsHash)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetBlueprint(ctx context.Context, documentID string, version int) (*blueprint.Blueprint, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT content FROM blueprints WHERE document_id = ? AND version = ?", documentID, version)
	return scanBlueprint(row)
}

func (s *SQLiteStore) LatestBlueprint(ctx context.Context, documentID string) (*blueprint.Blueprint, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT content FROM blueprints WHERE document_id = ? ORDER BY version DESC LIMIT 1", documentID)
	return scanBlueprint(row)
}

func scanBlueprint(row *sql.Row) (*blueprint.Blueprint, error) {
	var content []byte
	if err := row.Scan(&content); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return blueprint.Unmarshal(content)
}

func (s *SQLiteStore) ListBlueprintVersions(ctx context.Context, documentID string) ([]hierarchy.VersionInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT version, generated_at, mode, inputs_hash
		FROM blueprints WHERE document_id = ? ORDER BY version DESC
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []hierarchy.VersionInfo
	for rows.Next() {
		var v hierarchy.VersionInfo
		if err := rows.Scan(&v.Version, &v.GeneratedAt, &v.Mode, &v.InputsHash); err != nil {
			return nil, fmt.Errorf("failed to scan blueprint version: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
