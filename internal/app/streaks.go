package app

import (
	"sort"
	"time"

	"hackquest-service/internal/domain"
)

// computeStreaks derives streak counters from the attempt history. A streak
// day is a UTC calendar day with at least one passing attempt; longest is
// the longest run of consecutive days, current is the run ending at the most
// recent such day.
func computeStreaks(attempts []domain.QuizAttempt) (current, longest int) {
	seen := make(map[time.Time]struct{})
	for _, attempt := range attempts {
		if !attempt.Passed {
			continue
		}
		t := attempt.CompletedAt.UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		seen[day] = struct{}{}
	}
	if len(seen) == 0 {
		return 0, 0
	}

	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return run, longest
}
