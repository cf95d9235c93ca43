package scores

import (
	"context"
	"errors"
	"testing"

	"resumeiq-backend/internal/ats"
	"resumeiq-backend/internal/targets"
)

const sampleResume = `Summary: Backend engineer building APIs.
Experience: Built services with Python and Docker, improved latency by 30%.
Skills: Python, Docker, PostgreSQL
Education: BSc Computer Science`

func TestServiceScorePersistsRecord(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:   repo,
		Scorer: ats.NewScorer(&targets.Resolver{}),
	}

	record, err := svc.Score(context.Background(), sampleResume, nil)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if record.ID == "" {
		t.Fatalf("expected record ID, got empty")
	}
	if record.Score < 0 || record.Score > 100 {
		t.Fatalf("score out of range: %d", record.Score)
	}
	if record.ResumeChars != len(sampleResume) {
		t.Fatalf("expected resumeChars %d, got %d", len(sampleResume), record.ResumeChars)
	}

	stored, err := repo.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Score != record.Score {
		t.Fatalf("stored score %d != returned %d", stored.Score, record.Score)
	}
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, record Record) error {
	return errors.New("storage down")
}

func (failingRepo) GetByID(ctx context.Context, id string) (Record, error) {
	return Record{}, ErrNotFound
}

func (failingRepo) List(ctx context.Context, limit, offset int) ([]Record, error) {
	return nil, errors.New("storage down")
}

func TestServiceScoreSurvivesPersistFailure(t *testing.T) {
	svc := &Service{
		Repo:   failingRepo{},
		Scorer: ats.NewScorer(&targets.Resolver{}),
	}

	record, err := svc.Score(context.Background(), sampleResume, nil)
	if err != nil {
		t.Fatalf("Score should not fail on persist error: %v", err)
	}
	if record.Score < 0 || record.Score > 100 {
		t.Fatalf("score out of range: %d", record.Score)
	}
}

func TestServiceScoreWithoutRepo(t *testing.T) {
	svc := &Service{Scorer: ats.NewScorer(&targets.Resolver{})}

	record, err := svc.Score(context.Background(), sampleResume, nil)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if record.ID == "" {
		t.Fatalf("expected record ID, got empty")
	}

	if _, err := svc.Get(context.Background(), record.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound without repo, got %v", err)
	}
	records, err := svc.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty list without repo, got %d", len(records))
	}
}

func TestServiceKeywords(t *testing.T) {
	svc := &Service{Scorer: ats.NewScorer(&targets.Resolver{})}

	candidates := svc.Keywords("Python and Docker everywhere. Python again.", 5)
	if len(candidates) == 0 {
		t.Fatalf("expected keyword candidates, got none")
	}
	if candidates[0].Term != "python" {
		t.Fatalf("expected python first, got %q", candidates[0].Term)
	}
}
