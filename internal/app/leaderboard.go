package app

import (
	"context"
	"sort"

	"hackquest-service/internal/domain"
)

// Leaderboard ranks all users by total points, descending, with user ID
// ascending as the tie-break so the ordering is deterministic. Rank is the
// 1-based position; equal points never share a rank number.
func (s *Service) Leaderboard(_ context.Context) ([]domain.LeaderboardEntry, error) {
	return s.rankEntries(), nil
}

func (s *Service) rankEntries() []domain.LeaderboardEntry {
	users := s.rankedUsers()

	byUser := make(map[string][]domain.QuizAttempt)
	for _, attempt := range s.attempts.All() {
		byUser[attempt.UserID] = append(byUser[attempt.UserID], attempt)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		passed := 0
		for _, attempt := range byUser[user.ID] {
			if attempt.Passed {
				passed++
			}
		}
		streak, _ := computeStreaks(byUser[user.ID])

		user.Rank = i + 1
		entries = append(entries, domain.LeaderboardEntry{
			Rank:          i + 1,
			User:          user,
			TotalPoints:   user.TotalPoints,
			HackathonsWon: 0, // awaiting a real hackathon-result feed
			QuizzesPassed: passed,
			Streak:        streak,
		})
	}
	return entries
}

func (s *Service) rankedUsers() []domain.User {
	users := s.users.List()
	sort.Slice(users, func(i, j int) bool {
		if users[i].TotalPoints != users[j].TotalPoints {
			return users[i].TotalPoints > users[j].TotalPoints
		}
		return users[i].ID < users[j].ID
	})
	return users
}

// rankOf returns the user's 1-based leaderboard position, or 0 when unknown.
func (s *Service) rankOf(userID string) int {
	for i, user := range s.rankedUsers() {
		if user.ID == userID {
			return i + 1
		}
	}
	return 0
}

func (s *Service) leaderboardSnapshot() domain.Leaderboard {
	return domain.Leaderboard{
		Entries:   s.rankEntries(),
		UpdatedAt: s.now(),
	}
}
