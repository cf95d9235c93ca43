package scores

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resumeiq-backend/internal/ats"
	"resumeiq-backend/internal/keywords"
	"resumeiq-backend/internal/shared/metrics"
	"resumeiq-backend/internal/shared/telemetry"
)

// Service contains business logic for ATS score computation and history.
type Service struct {
	Repo   Repo
	Scorer *ats.Scorer
}

// Score computes an ATS score for the given resume content and records it.
// Persistence is best effort: a storage failure never fails the score.
func (s *Service) Score(ctx context.Context, resumeText string, data *ats.ResumeData) (Record, error) {
	if s.Scorer == nil {
		return Record{}, errors.New("scorer is not configured")
	}

	started := time.Now()
	result, err := s.Scorer.Calculate(ctx, resumeText, data)
	if err != nil {
		metrics.IncScoreFailed()
		return Record{}, err
	}
	metrics.IncScoreComputed()
	if result.Meta.AIAssisted {
		metrics.IncScoreAIAssisted()
	} else {
		metrics.IncScoreFallback()
	}
	metrics.ObserveScoreDurationMs(float64(time.Since(started).Milliseconds()))

	record := Record{
		ID:          uuid.NewString(),
		Score:       result.Score,
		AIAssisted:  result.Meta.AIAssisted,
		ResumeChars: len(resumeText),
		Result:      result,
		CreatedAt:   time.Now().UTC(),
	}

	if s.Repo != nil {
		if err := s.Repo.Create(ctx, record); err != nil {
			telemetry.Error("score.persist_failed", map[string]any{
				"scoreId": record.ID,
				"err":     err.Error(),
			})
		}
	}

	telemetry.Info("score.computed", map[string]any{
		"scoreId":     record.ID,
		"score":       record.Score,
		"aiAssisted":  record.AIAssisted,
		"resumeChars": record.ResumeChars,
		"durationMs":  time.Since(started).Milliseconds(),
	})
	return record, nil
}

// Keywords extracts ranked keyword candidates from free text.
func (s *Service) Keywords(text string, limit int) []keywords.Candidate {
	return ats.ExtractKeywords(text, limit)
}

// Get returns a stored score record.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if s.Repo == nil {
		return Record{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns stored score records, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if s.Repo == nil {
		return []Record{}, nil
	}
	return s.Repo.List(ctx, limit, offset)
}
