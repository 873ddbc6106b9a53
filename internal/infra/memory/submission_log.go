package memory

import (
	"sync"

	"hackquest-service/internal/domain"
)

// SubmissionLog holds hackathon project submissions in append order.
type SubmissionLog struct {
	mu          sync.RWMutex
	submissions []domain.Submission
}

func NewSubmissionLog() *SubmissionLog {
	return &SubmissionLog{}
}

func (l *SubmissionLog) Append(sub domain.Submission) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.submissions = append(l.submissions, sub)
}

// ForHackathon returns submissions for one hackathon in append order.
func (l *SubmissionLog) ForHackathon(hackathonID string) []domain.Submission {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Submission
	for _, sub := range l.submissions {
		if sub.HackathonID == hackathonID {
			out = append(out, sub)
		}
	}
	return out
}
