package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/config"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/resilience"
)

// ResultFilter specifies criteria for listing stored results.
type ResultFilter struct {
	OrgID  string           `json:"org_id,omitempty"`
	Kind   model.ResultKind `json:"kind,omitempty"`
	Limit  int              `json:"limit,omitempty"`
	Offset int              `json:"offset,omitempty"`
}

// Store persists audit submissions and engine results. The engines themselves
// never touch persistence; IDs and timestamps are assigned here.
type Store interface {
	// Audits
	SaveAudit(ctx context.Context, orgID string, variant model.AuditVariant, inputs model.AuditInputs) (*model.Audit, error)
	GetAudit(ctx context.Context, auditID string) (*model.Audit, error)
	LatestAudit(ctx context.Context, orgID string, variant model.AuditVariant) (*model.Audit, error)
	ListAudits(ctx context.Context, orgID string, limit int) ([]model.Audit, error)

	// Results
	SaveResult(ctx context.Context, orgID string, kind model.ResultKind, payload any) (*model.Result, error)
	GetResult(ctx context.Context, resultID string) (*model.Result, error)
	ListResults(ctx context.Context, filter ResultFilter) ([]model.Result, error)
	ImportResults(ctx context.Context, results []model.Result) (int64, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs a Store from config, dispatching on the driver name.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLite(cfg.DSN())
	case "postgres":
		retry := resilience.DefaultRetryConfig()
		retry.OnRetry = resilience.RetryLogger("postgres connect")
		return resilience.DoVal(ctx, retry, func(ctx context.Context) (Store, error) {
			return NewPostgres(ctx, cfg.DSN(), &PoolConfig{MaxConns: cfg.MaxConns, MinConns: cfg.MinConns})
		})
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
