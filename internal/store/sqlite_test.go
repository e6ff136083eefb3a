package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleInputs() model.AuditInputs {
	return model.AuditInputs{
		"collection": {"q1": 60, "q2": 40},
		"storage":    {"q1": 80},
	}
}

func TestSQLite_SaveAndGetAudit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	saved, err := st.SaveAudit(ctx, "org-1", model.AuditVariantData, sampleInputs())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := st.GetAudit(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "org-1", got.OrgID)
	assert.Equal(t, model.AuditVariantData, got.Variant)
	assert.Equal(t, sampleInputs(), got.Inputs)
}

func TestSQLite_GetAudit_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetAudit(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLite_LatestAudit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	first, err := st.SaveAudit(ctx, "org-1", model.AuditVariantAI, model.AuditInputs{
		"strategy": {"q1": 20},
	})
	require.NoError(t, err)
	second, err := st.SaveAudit(ctx, "org-1", model.AuditVariantAI, model.AuditInputs{
		"strategy": {"q1": 55},
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	latest, err := st.LatestAudit(ctx, "org-1", model.AuditVariantAI)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.InDelta(t, 55, latest.Inputs["strategy"]["q1"], 0.001)
}

func TestSQLite_LatestAudit_NoneReturnsNil(t *testing.T) {
	st := newTestSQLiteStore(t)

	latest, err := st.LatestAudit(context.Background(), "org-none", model.AuditVariantData)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestSQLite_LatestAudit_VariantIsolation(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.SaveAudit(ctx, "org-1", model.AuditVariantData, sampleInputs())
	require.NoError(t, err)

	latest, err := st.LatestAudit(ctx, "org-1", model.AuditVariantAI)
	require.NoError(t, err)
	assert.Nil(t, latest, "data audit must not satisfy an ai lookup")
}

func TestSQLite_ListAudits(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := st.SaveAudit(ctx, "org-1", model.AuditVariantData, sampleInputs())
		require.NoError(t, err)
	}
	_, err := st.SaveAudit(ctx, "org-2", model.AuditVariantData, sampleInputs())
	require.NoError(t, err)

	audits, err := st.ListAudits(ctx, "org-1", 0)
	require.NoError(t, err)
	assert.Len(t, audits, 3)

	audits, err = st.ListAudits(ctx, "org-1", 2)
	require.NoError(t, err)
	assert.Len(t, audits, 2)
}

func TestSQLite_SaveAndGetResult(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	payload := map[string]any{"composite_score": 62.5, "stage": 4}
	saved, err := st.SaveResult(ctx, "org-1", model.ResultKindDataMaturity, payload)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	got, err := st.GetResult(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ResultKindDataMaturity, got.Kind)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got.Payload, &decoded))
	assert.InDelta(t, 62.5, decoded["composite_score"], 0.001)
}

func TestSQLite_ListResults_Filters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.SaveResult(ctx, "org-1", model.ResultKindDataMaturity, map[string]any{"a": 1})
	require.NoError(t, err)
	_, err = st.SaveResult(ctx, "org-1", model.ResultKindRoadmap, map[string]any{"b": 2})
	require.NoError(t, err)
	_, err = st.SaveResult(ctx, "org-2", model.ResultKindDataMaturity, map[string]any{"c": 3})
	require.NoError(t, err)

	byOrg, err := st.ListResults(ctx, ResultFilter{OrgID: "org-1"})
	require.NoError(t, err)
	assert.Len(t, byOrg, 2)

	byKind, err := st.ListResults(ctx, ResultFilter{Kind: model.ResultKindDataMaturity})
	require.NoError(t, err)
	assert.Len(t, byKind, 2)

	both, err := st.ListResults(ctx, ResultFilter{OrgID: "org-1", Kind: model.ResultKindRoadmap})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, model.ResultKindRoadmap, both[0].Kind)
}

func TestSQLite_ImportResults(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	imported, err := st.ImportResults(ctx, []model.Result{
		{ID: "r-1", OrgID: "acme", Kind: model.ResultKindDataMaturity, Payload: json.RawMessage(`{"composite_score":55}`)},
		{OrgID: "acme", Kind: model.ResultKindRoadmap, Payload: json.RawMessage(`{}`)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), imported)

	got, err := st.GetResult(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, model.ResultKindDataMaturity, got.Kind)
	assert.False(t, got.CreatedAt.IsZero())

	// Re-importing the same id overwrites rather than duplicating.
	_, err = st.ImportResults(ctx, []model.Result{
		{ID: "r-1", OrgID: "acme", Kind: model.ResultKindDataMaturity, Payload: json.RawMessage(`{"composite_score":70}`)},
	})
	require.NoError(t, err)

	results, err := st.ListResults(ctx, ResultFilter{OrgID: "acme", Kind: model.ResultKindDataMaturity})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, string(results[0].Payload), "70")
}

func TestSQLite_ImportResults_Empty(t *testing.T) {
	st := newTestSQLiteStore(t)

	n, err := st.ImportResults(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
