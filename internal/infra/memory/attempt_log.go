package memory

import (
	"sync"

	"hackquest-service/internal/domain"
)

// AttemptLog is the append-only history of quiz attempts. Append order is
// chronological; attempts are never mutated or removed.
type AttemptLog struct {
	mu       sync.RWMutex
	attempts []domain.QuizAttempt
}

func NewAttemptLog() *AttemptLog {
	return &AttemptLog{}
}

func (l *AttemptLog) Append(attempt domain.QuizAttempt) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts = append(l.attempts, attempt)
}

// ForUser returns the user's attempts in append order.
func (l *AttemptLog) ForUser(userID string) []domain.QuizAttempt {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.QuizAttempt
	for _, attempt := range l.attempts {
		if attempt.UserID == userID {
			out = append(out, attempt)
		}
	}
	return out
}

// All returns every attempt in append order.
func (l *AttemptLog) All() []domain.QuizAttempt {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.QuizAttempt, len(l.attempts))
	copy(out, l.attempts)
	return out
}
