package cli

import "testing"

func TestSeedQuizzesSatisfyCatalogInvariants(t *testing.T) {
	for _, quiz := range seedQuizzes() {
		if err := quiz.Validate(); err != nil {
			t.Fatalf("seed quiz %s invalid: %v", quiz.ID, err)
		}
	}
}

func TestSeedHackathonsHaveIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, h := range seedHackathons() {
		if h.ID == "" || seen[h.ID] {
			t.Fatalf("hackathon with missing or duplicate id: %+v", h)
		}
		seen[h.ID] = true
	}
}
