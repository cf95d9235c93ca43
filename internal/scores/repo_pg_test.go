package scores

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resumeiq-backend/internal/ats"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := Record{
		ID:          "score-1",
		Score:       72,
		AIAssisted:  true,
		ResumeChars: 1200,
		Result: ats.Result{
			Score:        72,
			AnalysisMode: ats.AnalysisModeResumeOnly,
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO ats_scores").
		WithArgs(
			record.ID,
			record.Score,
			record.AIAssisted,
			record.ResumeChars,
			sqlmock.AnyArg(), // result jsonb
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC().Truncate(time.Second)
	resultRaw, err := json.Marshal(ats.Result{
		Score:           61,
		MatchedKeywords: []string{"python"},
		AnalysisMode:    ats.AnalysisModeResumeOnly,
	})
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{"id", "score", "ai_assisted", "resume_chars", "result", "created_at"}).
		AddRow("score-1", 61, false, 900, resultRaw, createdAt)
	mock.ExpectQuery("SELECT id, score, ai_assisted").
		WithArgs("score-1").
		WillReturnRows(rows)

	record, err := repo.GetByID(context.Background(), "score-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if record.Score != 61 {
		t.Fatalf("expected score 61, got %d", record.Score)
	}
	if len(record.Result.MatchedKeywords) != 1 || record.Result.MatchedKeywords[0] != "python" {
		t.Fatalf("unexpected matched keywords: %v", record.Result.MatchedKeywords)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, score, ai_assisted").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "score", "ai_assisted", "resume_chars", "result", "created_at"}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "score", "ai_assisted", "resume_chars", "result", "created_at"}).
		AddRow("score-2", 80, true, 1500, []byte(`{"score":80}`), createdAt).
		AddRow("score-1", 55, false, 700, []byte(`{"score":55}`), createdAt.Add(-time.Minute))
	mock.ExpectQuery("SELECT id, score, ai_assisted").
		WithArgs(20, 0).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), 0, -5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "score-2" {
		t.Fatalf("expected score-2 first, got %s", records[0].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
