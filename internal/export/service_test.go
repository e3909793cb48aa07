package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/assemble"
	"github.com/d-okonkwo/loandocs/internal/repository"
)

type fakeRuns struct {
	runs []*repository.ExtractionRun
	err  error
}

func (f *fakeRuns) Start(context.Context, string, string) (*repository.ExtractionRun, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRuns) FinishSuccess(context.Context, uuid.UUID, *assemble.DocumentRecord, []byte) error {
	return errors.New("not implemented")
}

func (f *fakeRuns) FinishFailure(context.Context, uuid.UUID, string) error {
	return errors.New("not implemented")
}

func (f *fakeRuns) GetByID(context.Context, uuid.UUID) (*repository.ExtractionRun, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRuns) ListRuns(context.Context) ([]*repository.ExtractionRun, error) {
	return f.runs, f.err
}

func TestExportRunsXLSX(t *testing.T) {
	principal := 2000000.0
	rate := 5.5
	finished := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRuns{runs: []*repository.ExtractionRun{
		{
			ID:              uuid.New(),
			SourcePath:      "/in/agreement.json",
			Status:          constants.RunStatusOK,
			DocumentType:    "Loan Agreement",
			GoverningLaw:    "Singapore",
			Currency:        "SGD",
			PrincipalAmount: &principal,
			InterestRate:    &rate,
			CreatedAt:       finished.Add(-time.Minute),
			FinishedAt:      &finished,
		},
		{
			ID:           uuid.New(),
			SourcePath:   "/in/broken.pdf",
			Status:       constants.RunStatusFailed,
			ErrorMessage: "parse pdf: truncated file",
			CreatedAt:    finished,
		},
	}}

	svc := NewService(repo, "Runs", nil)
	data, err := svc.ExportRunsXLSX(context.Background())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Runs")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Source", rows[0][0])
	assert.Equal(t, "Error", rows[0][8])

	assert.Equal(t, "/in/agreement.json", rows[1][0])
	assert.Equal(t, "OK", rows[1][1])
	assert.Equal(t, "Loan Agreement", rows[1][2])
	assert.Equal(t, "2000000", rows[1][3])
	assert.Equal(t, "SGD", rows[1][4])
	assert.Equal(t, "5.5", rows[1][5])
	assert.Equal(t, "Singapore", rows[1][6])
	assert.Equal(t, "2026-08-01T12:00:00Z", rows[1][7])

	assert.Equal(t, "/in/broken.pdf", rows[2][0])
	assert.Equal(t, "FAILED", rows[2][1])
	assert.Equal(t, "parse pdf: truncated file", rows[2][8])
}

func TestExportRunsXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeRuns{}, "", nil)

	data, err := svc.ExportRunsXLSX(context.Background())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}

func TestExportRunsXLSXListError(t *testing.T) {
	svc := NewService(&fakeRuns{err: errors.New("db down")}, "Runs", nil)

	_, err := svc.ExportRunsXLSX(context.Background())
	assert.ErrorContains(t, err, "db down")
}
