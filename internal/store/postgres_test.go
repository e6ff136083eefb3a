package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresWithPool(mock), mock
}

func TestPostgres_SaveAudit(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO audits`).
		WithArgs(pgxmock.AnyArg(), "org-1", "data", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	a, err := s.SaveAudit(context.Background(), "org-1", model.AuditVariantData, model.AuditInputs{
		"governance": {"q1": 30},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, model.AuditVariantData, a.Variant)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetAudit_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, org_id, variant, inputs, created_at FROM audits WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetAudit(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get audit")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_LatestAudit_NoneReturnsNil(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, org_id, variant, inputs, created_at FROM audits`).
		WithArgs("org-1", "ai").
		WillReturnError(pgx.ErrNoRows)

	a, err := s.LatestAudit(context.Background(), "org-1", model.AuditVariantAI)
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_LatestAudit_Found(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	inputs, err := json.Marshal(model.AuditInputs{"strategy": {"q1": 70}})
	require.NoError(t, err)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, org_id, variant, inputs, created_at FROM audits`).
		WithArgs("org-1", "ai").
		WillReturnRows(pgxmock.NewRows([]string{"id", "org_id", "variant", "inputs", "created_at"}).
			AddRow("audit-1", "org-1", model.AuditVariantAI, inputs, now))

	a, err := s.LatestAudit(context.Background(), "org-1", model.AuditVariantAI)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "audit-1", a.ID)
	assert.InDelta(t, 70, a.Inputs["strategy"]["q1"], 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveResult(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO results`).
		WithArgs(pgxmock.AnyArg(), "org-1", "classification", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	r, err := s.SaveResult(context.Background(), "org-1", model.ResultKindClassification, map[string]any{
		"classification": "Scaling Adopter",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ResultKindClassification, r.Kind)
	assert.Contains(t, string(r.Payload), "Scaling Adopter")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListResults_KindFilter(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, org_id, kind, payload, created_at FROM results`).
		WithArgs("org-1", "roadmap", 100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "org_id", "kind", "payload", "created_at"}).
			AddRow("r1", "org-1", model.ResultKindRoadmap, []byte(`{"phases":[]}`), now))

	results, err := s.ListResults(context.Background(), ResultFilter{
		OrgID: "org-1",
		Kind:  model.ResultKindRoadmap,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ImportResults_Empty(t *testing.T) {
	s, _ := newMockPostgresStore(t)

	n, err := s.ImportResults(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostgres_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS audits`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
