package app

import (
	"context"
	"fmt"

	"hackquest-service/internal/domain"
)

// Progress derives the user's completion statistics and recent-activity feed
// from the attempt history. The feed carries the five most recent attempts in
// chronological order.
func (s *Service) Progress(_ context.Context, userID string) (domain.UserProgress, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return domain.UserProgress{}, err
	}

	attempts := s.attempts.ForUser(userID)

	passed := 0
	for _, attempt := range attempts {
		if attempt.Passed {
			passed++
		}
	}

	recent := attempts
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	activity := make([]domain.Activity, 0, len(recent))
	for _, attempt := range recent {
		kind := domain.ActivityQuizComplete
		title := "Quiz Completed"
		if attempt.Passed {
			kind = domain.ActivityQuizPass
			title = "Quiz Passed!"
		}
		activity = append(activity, domain.Activity{
			ID:          attempt.ID,
			Type:        kind,
			Title:       title,
			Description: fmt.Sprintf("Scored %.1f%%", attempt.Percentage),
			Points:      attempt.Score,
			Timestamp:   attempt.CompletedAt,
		})
	}

	current, longest := computeStreaks(attempts)

	return domain.UserProgress{
		UserID:              user.ID,
		TotalPoints:         user.TotalPoints,
		Level:               user.Level,
		HackathonsCompleted: user.HackathonsCompleted,
		HackathonsWon:       0, // awaiting a real hackathon-result feed
		QuizzesCompleted:    user.QuizzesCompleted,
		QuizzesPassed:       passed,
		CurrentStreak:       current,
		LongestStreak:       longest,
		RecentActivity:      activity,
	}, nil
}
