package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/assemble"
	"github.com/d-okonkwo/loandocs/internal/common"
)

// ExtractionRun is one archived pipeline run.
type ExtractionRun struct {
	ID              uuid.UUID
	SourcePath      string
	SourceFormat    string
	Status          constants.RunStatus
	DocumentType    string
	GoverningLaw    string
	Currency        string
	PrincipalAmount *float64
	InterestRate    *float64
	RecordJSON      []byte
	ErrorMessage    string
	CreatedAt       time.Time
	FinishedAt      *time.Time
}

// RunRepository archives extraction runs and their assembled records.
type RunRepository interface {
	Start(ctx context.Context, sourcePath, sourceFormat string) (*ExtractionRun, error)
	FinishSuccess(ctx context.Context, runID uuid.UUID, rec *assemble.DocumentRecord, recordJSON []byte) error
	FinishFailure(ctx context.Context, runID uuid.UUID, message string) error
	GetByID(ctx context.Context, runID uuid.UUID) (*ExtractionRun, error)
	ListRuns(ctx context.Context) ([]*ExtractionRun, error)
}

type runRepo struct {
	db      *sql.DB
	dialect Dialect
	log     *slog.Logger
}

func NewRunRepository(db *sql.DB, dialect Dialect, log *slog.Logger) RunRepository {
	if log == nil {
		log = slog.Default()
	}
	return &runRepo{db: db, dialect: dialect, log: log}
}

func (r *runRepo) Start(ctx context.Context, sourcePath, sourceFormat string) (*ExtractionRun, error) {
	run := &ExtractionRun{
		ID:           uuid.New(),
		SourcePath:   sourcePath,
		SourceFormat: sourceFormat,
		Status:       constants.RunStatusRunning,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, rebind(r.dialect,
		`INSERT INTO extraction_run (id, source_path, source_format, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`),
		run.ID.String(), run.SourcePath, run.SourceFormat, string(run.Status),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.log.Error("extraction_run start failed", "source", sourcePath, "err", err)
		return nil, common.WrapError(err, "start extraction run")
	}
	r.log.Info("extraction_run started", "run_id", run.ID, "source", sourcePath, "format", sourceFormat)
	return run, nil
}

func (r *runRepo) FinishSuccess(ctx context.Context, runID uuid.UUID, rec *assemble.DocumentRecord, recordJSON []byte) error {
	var principal, rate *float64
	currency := ""
	if rec != nil {
		principal = rec.LoanTerms.PrincipalAmount
		rate = rec.LoanTerms.InterestRate
		currency = rec.LoanTerms.Currency
	}
	docType, law := "", ""
	if rec != nil {
		docType = rec.DocumentType
		law = rec.GoverningLaw
	}

	res, err := r.db.ExecContext(ctx, rebind(r.dialect,
		`UPDATE extraction_run
		 SET status = ?, document_type = ?, governing_law = ?, currency = ?,
		     principal_amount = ?, interest_rate = ?, record_json = ?, finished_at = ?
		 WHERE id = ?`),
		string(constants.RunStatusOK), docType, law, currency,
		principal, rate, string(recordJSON),
		time.Now().UTC().Format(time.RFC3339Nano), runID.String(),
	)
	if err != nil {
		r.log.Error("extraction_run finish failed", "run_id", runID, "err", err)
		return common.WrapError(err, "finish extraction run")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	r.log.Info("extraction_run ok", "run_id", runID, "document_type", docType)
	return nil
}

func (r *runRepo) FinishFailure(ctx context.Context, runID uuid.UUID, message string) error {
	res, err := r.db.ExecContext(ctx, rebind(r.dialect,
		`UPDATE extraction_run SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`),
		string(constants.RunStatusFailed), message,
		time.Now().UTC().Format(time.RFC3339Nano), runID.String(),
	)
	if err != nil {
		r.log.Error("extraction_run fail-mark failed", "run_id", runID, "err", err)
		return common.WrapError(err, "mark extraction run failed")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *runRepo) GetByID(ctx context.Context, runID uuid.UUID) (*ExtractionRun, error) {
	row := r.db.QueryRowContext(ctx, rebind(r.dialect,
		selectColumns+` WHERE id = ?`), runID.String())
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return run, err
}

func (r *runRepo) ListRuns(ctx context.Context) ([]*ExtractionRun, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at, id`)
	if err != nil {
		return nil, common.WrapError(err, "list extraction runs")
	}
	defer func() { _ = rows.Close() }()

	var runs []*ExtractionRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

const selectColumns = `SELECT id, source_path, source_format, status, document_type,
	governing_law, currency, principal_amount, interest_rate, record_json,
	error_message, created_at, finished_at FROM extraction_run`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*ExtractionRun, error) {
	var (
		run        ExtractionRun
		id         string
		recordJSON sql.NullString
		createdAt  string
		finishedAt sql.NullString
	)
	err := row.Scan(&id, &run.SourcePath, &run.SourceFormat, &run.Status, &run.DocumentType,
		&run.GoverningLaw, &run.Currency, &run.PrincipalAmount, &run.InterestRate, &recordJSON,
		&run.ErrorMessage, &createdAt, &finishedAt)
	if err != nil {
		return nil, err
	}
	run.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse run id: %w", err)
	}
	if recordJSON.Valid {
		run.RecordJSON = []byte(recordJSON.String)
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if finishedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, finishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		run.FinishedAt = &t
	}
	return &run, nil
}
