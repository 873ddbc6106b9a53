package app

import (
	"context"

	"hackquest-service/internal/domain"

	"github.com/google/uuid"
)

// Signup registers a new user. Passwords are accepted but not stored or
// verified; credential handling is a placeholder by scope.
func (s *Service) Signup(_ context.Context, name, email, password string) (domain.User, error) {
	if name == "" || email == "" || password == "" {
		return domain.User{}, domain.ErrInvalidInput
	}
	user := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		JoinedAt: s.now(),
		Level:    1,
	}
	if err := s.users.Create(user); err != nil {
		return domain.User{}, err
	}
	user.Rank = s.rankOf(user.ID)
	return user, nil
}

// Login resolves a user by email. An unknown email reads as bad credentials,
// not as a missing resource.
func (s *Service) Login(_ context.Context, email, password string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, domain.ErrInvalidInput
	}
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return domain.User{}, domain.ErrUnauthorized
	}
	user.Rank = s.rankOf(user.ID)
	return user, nil
}

// Profile returns the user record with its current leaderboard rank.
func (s *Service) Profile(_ context.Context, userID string) (domain.User, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return domain.User{}, err
	}
	user.Rank = s.rankOf(user.ID)
	return user, nil
}
