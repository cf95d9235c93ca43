package scores

import (
	"time"

	"resumeiq-backend/internal/ats"
)

// Record is one persisted scoring run. The full result is stored for history
// views; the transient target set behind it is not.
type Record struct {
	ID          string     `json:"id"`
	Score       int        `json:"score"`
	AIAssisted  bool       `json:"aiAssisted"`
	ResumeChars int        `json:"resumeChars"`
	Result      ats.Result `json:"result"`
	CreatedAt   time.Time  `json:"createdAt"`
}
