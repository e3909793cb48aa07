package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/assemble"
	"github.com/d-okonkwo/loandocs/internal/common"
	"github.com/d-okonkwo/loandocs/internal/extract"
)

func newTestRepo(t *testing.T) RunRepository {
	t.Helper()
	db, dialect, err := Open(context.Background(), common.DatabaseConfig{DSN: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.Equal(t, DialectSQLite, dialect)
	return NewRunRepository(db, dialect, nil)
}

func TestRunLifecycleSuccess(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run, err := repo.Start(ctx, "/in/agreement.json", "json")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, constants.RunStatusRunning, run.Status)

	principal := 2000000.0
	rate := 5.5
	rec := &assemble.DocumentRecord{
		DocumentType: "Loan Agreement",
		GoverningLaw: "Singapore",
		LoanTerms: extract.LoanTerms{
			PrincipalAmount: &principal,
			Currency:        "SGD",
			InterestRate:    &rate,
		},
	}
	recordJSON, err := assemble.MarshalRecord(rec)
	require.NoError(t, err)
	require.NoError(t, repo.FinishSuccess(ctx, run.ID, rec, recordJSON))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RunStatusOK, got.Status)
	assert.Equal(t, "Loan Agreement", got.DocumentType)
	assert.Equal(t, "Singapore", got.GoverningLaw)
	assert.Equal(t, "SGD", got.Currency)
	require.NotNil(t, got.PrincipalAmount)
	assert.InDelta(t, 2000000.0, *got.PrincipalAmount, 0.001)
	require.NotNil(t, got.InterestRate)
	assert.InDelta(t, 5.5, *got.InterestRate, 0.001)
	assert.JSONEq(t, string(recordJSON), string(got.RecordJSON))
	require.NotNil(t, got.FinishedAt)
	assert.False(t, got.FinishedAt.Before(got.CreatedAt))
	assert.Empty(t, got.ErrorMessage)
}

func TestRunLifecycleFailure(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run, err := repo.Start(ctx, "/in/broken.pdf", "pdf")
	require.NoError(t, err)
	require.NoError(t, repo.FinishFailure(ctx, run.ID, "parse pdf: truncated file"))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RunStatusFailed, got.Status)
	assert.Equal(t, "parse pdf: truncated file", got.ErrorMessage)
	assert.Nil(t, got.PrincipalAmount)
	assert.Nil(t, got.InterestRate)
	require.NotNil(t, got.FinishedAt)
}

func TestRunWithNilMetrics(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run, err := repo.Start(ctx, "/in/sparse.json", "json")
	require.NoError(t, err)

	rec := &assemble.DocumentRecord{DocumentType: "Unknown", GoverningLaw: "Unknown"}
	require.NoError(t, repo.FinishSuccess(ctx, run.ID, rec, []byte(`{}`)))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PrincipalAmount)
	assert.Nil(t, got.InterestRate)
	assert.Empty(t, got.Currency)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFinishUnknownRun(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.FinishSuccess(ctx, uuid.New(), nil, nil), common.ErrNotFound)
	assert.ErrorIs(t, repo.FinishFailure(ctx, uuid.New(), "nope"), common.ErrNotFound)
}

func TestListRunsOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Start(ctx, "/in/one.json", "json")
	require.NoError(t, err)
	second, err := repo.Start(ctx, "/in/two.json", "json")
	require.NoError(t, err)

	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first.ID, runs[0].ID)
	assert.Equal(t, second.ID, runs[1].ID)
}
