package app

import (
	"context"

	"hackquest-service/internal/domain"
)

// Quizzes lists the quiz catalog.
func (s *Service) Quizzes(ctx context.Context) ([]domain.Quiz, error) {
	return s.catalog.ListQuizzes(ctx)
}

// Quiz returns a single quiz by ID.
func (s *Service) Quiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	return s.catalog.GetQuiz(ctx, quizID)
}

// Hackathons lists the hackathon catalog.
func (s *Service) Hackathons(ctx context.Context) ([]domain.Hackathon, error) {
	return s.catalog.ListHackathons(ctx)
}

// Hackathon returns a single hackathon by ID.
func (s *Service) Hackathon(ctx context.Context, hackathonID string) (domain.Hackathon, error) {
	return s.catalog.GetHackathon(ctx, hackathonID)
}
