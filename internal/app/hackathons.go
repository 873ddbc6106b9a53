package app

import (
	"context"

	"hackquest-service/internal/domain"

	"github.com/google/uuid"
)

// SubmissionInput is the client-provided part of a hackathon submission.
type SubmissionInput struct {
	Title       string
	Description string
	GithubURL   string
	LiveURL     string
}

// SubmitProject records a hackathon submission and increments the user's
// completion counter. No points are awarded here; the source defines no
// scoring rule for hackathons.
func (s *Service) SubmitProject(ctx context.Context, userID, hackathonID string, in SubmissionInput) (domain.Submission, error) {
	if in.Title == "" || in.GithubURL == "" {
		return domain.Submission{}, domain.ErrInvalidInput
	}
	if _, err := s.catalog.GetHackathon(ctx, hackathonID); err != nil {
		return domain.Submission{}, err
	}
	user, err := s.users.Get(userID)
	if err != nil {
		return domain.Submission{}, err
	}

	sub := domain.Submission{
		ID:          uuid.NewString(),
		HackathonID: hackathonID,
		UserID:      user.ID,
		UserName:    user.Name,
		Title:       in.Title,
		Description: in.Description,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
		SubmittedAt: s.now(),
	}
	s.submissions.Append(sub)

	if _, err := s.users.RecordHackathonCompletion(user.ID); err != nil {
		return domain.Submission{}, err
	}
	return sub, nil
}

// Submissions lists the submissions recorded for a hackathon.
func (s *Service) Submissions(ctx context.Context, hackathonID string) ([]domain.Submission, error) {
	if _, err := s.catalog.GetHackathon(ctx, hackathonID); err != nil {
		return nil, err
	}
	return s.submissions.ForHackathon(hackathonID), nil
}
