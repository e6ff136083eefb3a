package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS audits (
	id         TEXT PRIMARY KEY,
	org_id     TEXT NOT NULL,
	variant    TEXT NOT NULL,
	inputs     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS results (
	id         TEXT PRIMARY KEY,
	org_id     TEXT NOT NULL,
	kind       TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_audits_org_variant ON audits(org_id, variant, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_results_org ON results(org_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_results_kind ON results(kind);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAudit(ctx context.Context, orgID string, variant model.AuditVariant, inputs model.AuditInputs) (*model.Audit, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal audit inputs")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO audits (id, org_id, variant, inputs, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, orgID, string(variant), string(inputsJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert audit")
	}

	return &model.Audit{
		ID:        id,
		OrgID:     orgID,
		Variant:   variant,
		Inputs:    inputs,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetAudit(ctx context.Context, auditID string) (*model.Audit, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, org_id, variant, inputs, created_at FROM audits WHERE id = ?`,
		auditID,
	)
	return scanAudit(row)
}

func (s *SQLiteStore) LatestAudit(ctx context.Context, orgID string, variant model.AuditVariant) (*model.Audit, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, org_id, variant, inputs, created_at FROM audits
		 WHERE org_id = ? AND variant = ?
		 ORDER BY created_at DESC LIMIT 1`,
		orgID, string(variant),
	)
	a, err := scanAudit(row)
	if err != nil && eris.Is(err, errNotFound) {
		return nil, nil
	}
	return a, err
}

func (s *SQLiteStore) ListAudits(ctx context.Context, orgID string, limit int) ([]model.Audit, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, org_id, variant, inputs, created_at FROM audits
		 WHERE org_id = ? ORDER BY created_at DESC LIMIT ?`,
		orgID, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list audits")
	}
	defer rows.Close()

	var audits []model.Audit
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		audits = append(audits, *a)
	}
	return audits, eris.Wrap(rows.Err(), "sqlite: list audits iterate")
}

func (s *SQLiteStore) SaveResult(ctx context.Context, orgID string, kind model.ResultKind, payload any) (*model.Result, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: marshal %s payload", kind)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id, org_id, kind, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, orgID, string(kind), string(payloadJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert result")
	}

	return &model.Result{
		ID:        id,
		OrgID:     orgID,
		Kind:      kind,
		Payload:   payloadJSON,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetResult(ctx context.Context, resultID string) (*model.Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, org_id, kind, payload, created_at FROM results WHERE id = ?`,
		resultID,
	)
	return scanResult(row)
}

func (s *SQLiteStore) ListResults(ctx context.Context, filter ResultFilter) ([]model.Result, error) {
	query := `SELECT id, org_id, kind, payload, created_at FROM results WHERE 1=1`
	var args []any

	if filter.OrgID != "" {
		query += ` AND org_id = ?`
		args = append(args, filter.OrgID)
	}
	if filter.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(filter.Kind))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list results")
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, eris.Wrap(rows.Err(), "sqlite: list results iterate")
}

// ImportResults bulk-loads result rows in one transaction, overwriting rows
// whose id already exists. Missing ids and timestamps are filled in.
func (s *SQLiteStore) ImportResults(ctx context.Context, results []model.Result) (int64, error) {
	if len(results) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin import")
	}
	defer tx.Rollback() //nolint:errcheck

	var n int64
	for _, r := range results {
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO results (id, org_id, kind, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
			id, r.OrgID, string(r.Kind), string(r.Payload), createdAt,
		); err != nil {
			return 0, eris.Wrapf(err, "sqlite: import result %s", id)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit import")
	}
	return n, nil
}

// helpers

var errNotFound = eris.New("not found")

type scannable interface {
	Scan(dest ...any) error
}

func scanAudit(row scannable) (*model.Audit, error) {
	var a model.Audit
	var inputsJSON string

	err := row.Scan(&a.ID, &a.OrgID, &a.Variant, &inputsJSON, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(errNotFound, "audit")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan audit")
	}

	if err := json.Unmarshal([]byte(inputsJSON), &a.Inputs); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal audit inputs")
	}
	return &a, nil
}

func scanResult(row scannable) (*model.Result, error) {
	var r model.Result
	var payloadJSON string

	err := row.Scan(&r.ID, &r.OrgID, &r.Kind, &payloadJSON, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(errNotFound, "result")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan result")
	}

	r.Payload = []byte(payloadJSON)
	return &r, nil
}
