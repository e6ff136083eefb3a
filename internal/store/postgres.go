package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/db"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"insert_audit":  `INSERT INTO audits (id, org_id, variant, inputs, created_at) VALUES ($1, $2, $3, $4, $5)`,
	"get_audit":     `SELECT id, org_id, variant, inputs, created_at FROM audits WHERE id = $1`,
	"latest_audit":  `SELECT id, org_id, variant, inputs, created_at FROM audits WHERE org_id = $1 AND variant = $2 ORDER BY created_at DESC LIMIT 1`,
	"insert_result": `INSERT INTO results (id, org_id, kind, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
	"get_result":    `SELECT id, org_id, kind, payload, created_at FROM results WHERE id = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool, used by tests with pgxmock.
func NewPostgresWithPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS audits (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	org_id     TEXT NOT NULL,
	variant    TEXT NOT NULL,
	inputs     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS results (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	org_id     TEXT NOT NULL,
	kind       TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_audits_org_variant ON audits(org_id, variant, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_results_org ON results(org_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_results_kind ON results(kind);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveAudit(ctx context.Context, orgID string, variant model.AuditVariant, inputs model.AuditInputs) (*model.Audit, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal audit inputs")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO audits (id, org_id, variant, inputs, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, orgID, string(variant), inputsJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert audit")
	}

	return &model.Audit{
		ID:        id,
		OrgID:     orgID,
		Variant:   variant,
		Inputs:    inputs,
		CreatedAt: now,
	}, nil
}

func (s *PostgresStore) GetAudit(ctx context.Context, auditID string) (*model.Audit, error) {
	var a model.Audit
	var inputsJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, org_id, variant, inputs, created_at FROM audits WHERE id = $1`,
		auditID,
	).Scan(&a.ID, &a.OrgID, &a.Variant, &inputsJSON, &a.CreatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get audit %s", auditID)
	}

	if err := json.Unmarshal(inputsJSON, &a.Inputs); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal audit inputs")
	}
	return &a, nil
}

func (s *PostgresStore) LatestAudit(ctx context.Context, orgID string, variant model.AuditVariant) (*model.Audit, error) {
	var a model.Audit
	var inputsJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, org_id, variant, inputs, created_at FROM audits
		 WHERE org_id = $1 AND variant = $2
		 ORDER BY created_at DESC LIMIT 1`,
		orgID, string(variant),
	).Scan(&a.ID, &a.OrgID, &a.Variant, &inputsJSON, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "postgres: latest audit")
	}

	if err := json.Unmarshal(inputsJSON, &a.Inputs); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal audit inputs")
	}
	return &a, nil
}

func (s *PostgresStore) ListAudits(ctx context.Context, orgID string, limit int) ([]model.Audit, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, org_id, variant, inputs, created_at FROM audits
		 WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2`,
		orgID, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list audits")
	}
	defer rows.Close()

	var audits []model.Audit
	for rows.Next() {
		var a model.Audit
		var inputsJSON []byte
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Variant, &inputsJSON, &a.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan audit")
		}
		if err := json.Unmarshal(inputsJSON, &a.Inputs); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal audit inputs")
		}
		audits = append(audits, a)
	}
	return audits, eris.Wrap(rows.Err(), "postgres: list audits iterate")
}

func (s *PostgresStore) SaveResult(ctx context.Context, orgID string, kind model.ResultKind, payload any) (*model.Result, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: marshal %s payload", kind)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO results (id, org_id, kind, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, orgID, string(kind), payloadJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert result")
	}

	return &model.Result{
		ID:        id,
		OrgID:     orgID,
		Kind:      kind,
		Payload:   payloadJSON,
		CreatedAt: now,
	}, nil
}

func (s *PostgresStore) GetResult(ctx context.Context, resultID string) (*model.Result, error) {
	var r model.Result
	var payloadJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, org_id, kind, payload, created_at FROM results WHERE id = $1`,
		resultID,
	).Scan(&r.ID, &r.OrgID, &r.Kind, &payloadJSON, &r.CreatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get result %s", resultID)
	}
	r.Payload = payloadJSON
	return &r, nil
}

func (s *PostgresStore) ListResults(ctx context.Context, filter ResultFilter) ([]model.Result, error) {
	query := `SELECT id, org_id, kind, payload, created_at FROM results WHERE true`
	args := []any{}
	argIdx := 1

	if filter.OrgID != "" {
		query += fmt.Sprintf(` AND org_id = $%d`, argIdx)
		args = append(args, filter.OrgID)
		argIdx++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(` AND kind = $%d`, argIdx)
		args = append(args, string(filter.Kind))
		argIdx++
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list results")
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var r model.Result
		var payloadJSON []byte
		if err := rows.Scan(&r.ID, &r.OrgID, &r.Kind, &payloadJSON, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan result")
		}
		r.Payload = payloadJSON
		results = append(results, r)
	}
	return results, eris.Wrap(rows.Err(), "postgres: list results iterate")
}

// ImportResults bulk-loads result rows, upserting on id, for migrating data
// between installations. Rows that already exist are overwritten.
func (s *PostgresStore) ImportResults(ctx context.Context, results []model.Result) (int64, error) {
	if len(results) == 0 {
		return 0, nil
	}

	rows := make([][]any, len(results))
	for i, r := range results {
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		rows[i] = []any{id, r.OrgID, string(r.Kind), r.Payload, createdAt}
	}

	return db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "results",
		Columns:      []string{"id", "org_id", "kind", "payload", "created_at"},
		ConflictKeys: []string{"id"},
	}, rows)
}
