package app_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"hackquest-service/internal/app"
	"hackquest-service/internal/domain"
	"hackquest-service/internal/infra/memory"
)

func TestSubmitAllCorrect(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 0)

	attempt, err := svc.SubmitQuiz(context.Background(), "u1", "quiz-1", []domain.AnswerValue{
		domain.IndexAnswer(1), domain.IndexAnswer(0), domain.IndexAnswer(2),
	}, 120)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 30 || attempt.Percentage != 100 || !attempt.Passed {
		t.Fatalf("expected full score pass, got %+v", attempt)
	}

	user, _ := users.Get("u1")
	if user.TotalPoints != 30 || user.QuizzesCompleted != 1 || user.Level != 1 {
		t.Fatalf("unexpected user state: %+v", user)
	}
}

func TestSubmitPartiallyCorrect(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 0)

	attempt, err := svc.SubmitQuiz(context.Background(), "u1", "quiz-1", []domain.AnswerValue{
		domain.IndexAnswer(1), domain.IndexAnswer(0), domain.IndexAnswer(0), // last one wrong
	}, 90)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 20 {
		t.Fatalf("expected score 20, got %d", attempt.Score)
	}
	if math.Abs(attempt.Percentage-66.666) > 0.01 {
		t.Fatalf("expected ~66.7%%, got %f", attempt.Percentage)
	}
	if attempt.Passed {
		t.Fatalf("66.7%% must not pass a 70%% threshold")
	}
}

func TestSubmitAllIncorrect(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 0)

	attempt, err := svc.SubmitQuiz(context.Background(), "u1", "quiz-1", []domain.AnswerValue{
		domain.IndexAnswer(0), domain.IndexAnswer(1), domain.IndexAnswer(0),
	}, 30)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 0 || attempt.Passed {
		t.Fatalf("expected zero score and no pass, got %+v", attempt)
	}

	// The failed attempt still counts as completed.
	user, _ := users.Get("u1")
	if user.QuizzesCompleted != 1 || user.TotalPoints != 0 {
		t.Fatalf("unexpected user state: %+v", user)
	}
}

func TestSubmitShortAnswerListGradesMissingAsIncorrect(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 0)

	attempt, err := svc.SubmitQuiz(context.Background(), "u1", "quiz-1", []domain.AnswerValue{
		domain.IndexAnswer(1),
	}, 15)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 10 {
		t.Fatalf("expected only the answered question to score, got %d", attempt.Score)
	}
	if len(attempt.Answers) != 3 {
		t.Fatalf("every question gets an outcome record, got %d", len(attempt.Answers))
	}
	if attempt.Answers[1].Correct || attempt.Answers[2].Correct {
		t.Fatalf("missing positions must grade as incorrect: %+v", attempt.Answers)
	}
}

func TestSubmitCodingQuestionExactMatch(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 0)

	attempt, err := svc.SubmitQuiz(context.Background(), "u1", "quiz-go", []domain.AnswerValue{
		domain.IndexAnswer(1),
		domain.TextAnswer("func add(a, b int) int { return a + b }"),
	}, 300)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 40 || !attempt.Passed {
		t.Fatalf("expected exact code match to score fully, got %+v", attempt)
	}

	// Whitespace differences are a miss: grading is strict equality.
	attempt, err = svc.SubmitQuiz(context.Background(), "u1", "quiz-go", []domain.AnswerValue{
		domain.IndexAnswer(1),
		domain.TextAnswer("func add(a,b int) int { return a + b }"),
	}, 300)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Answers[1].Correct {
		t.Fatalf("near-miss code answer must not be correct")
	}
}

func TestSubmitUnknownQuizLeavesUserUntouched(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 500)

	_, err := svc.SubmitQuiz(context.Background(), "u1", "nope", []domain.AnswerValue{domain.IndexAnswer(0)}, 10)
	if !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}

	user, _ := users.Get("u1")
	if user.TotalPoints != 500 || user.QuizzesCompleted != 0 {
		t.Fatalf("failed submission must not mutate the user: %+v", user)
	}
}

func TestSubmitUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SubmitQuiz(context.Background(), "ghost", "quiz-1", nil, 10)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestLevelRecomputedFromLifetimePoints(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 980)

	before, _ := users.Get("u1")
	attempt, err := svc.SubmitQuiz(context.Background(), "u1", "quiz-1", []domain.AnswerValue{
		domain.IndexAnswer(1), domain.IndexAnswer(0), domain.IndexAnswer(2),
	}, 60)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	user, _ := users.Get("u1")
	if user.TotalPoints != before.TotalPoints+attempt.Score {
		t.Fatalf("points must increase by exactly the score: %d -> %d (score %d)", before.TotalPoints, user.TotalPoints, attempt.Score)
	}
	if user.Level != user.TotalPoints/1000+1 {
		t.Fatalf("level must be floor(total/1000)+1, got level=%d total=%d", user.Level, user.TotalPoints)
	}
	if user.Level != 2 {
		t.Fatalf("expected level 2 at %d points, got %d", user.TotalPoints, user.Level)
	}
}

// newTestService builds a service over in-memory stores with a fixed catalog.
func newTestService(t *testing.T) (*app.Service, *memory.UserStore) {
	t.Helper()
	svc, users, _ := newTestServiceWithClock(t, time.Now)
	return svc, users
}

func newTestServiceWithClock(t *testing.T, now func() time.Time) (*app.Service, *memory.UserStore, *memory.AttemptLog) {
	t.Helper()
	loader, err := memory.NewStaticCatalogLoader(testQuizzes(), testHackathons())
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	users := memory.NewUserStore()
	attempts := memory.NewAttemptLog()
	svc := app.NewServiceWithClock(users, attempts, memory.NewSubmissionLog(), memory.NewCatalog(loader, 5*time.Minute), now)
	return svc, users, attempts
}

func seedUser(t *testing.T, users *memory.UserStore, id string, points int) {
	t.Helper()
	if err := users.Create(domain.User{
		ID:          id,
		Name:        "User " + id,
		Email:       id + "@example.com",
		TotalPoints: points,
		Level:       points/1000 + 1,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func testQuizzes() []domain.Quiz {
	return []domain.Quiz{
		{
			ID:           "quiz-1",
			Title:        "JavaScript Fundamentals",
			PassingScore: 70,
			TotalPoints:  30,
			Questions: []domain.Question{
				{ID: "q1", Kind: domain.QuestionMultipleChoice, Prompt: "Which method appends to an array?",
					Options: []string{"append()", "push()", "insert()"}, Correct: domain.IndexAnswer(1), Points: 10},
				{ID: "q2", Kind: domain.QuestionTrueFalse, Prompt: "JavaScript is dynamically typed.",
					Correct: domain.IndexAnswer(0), Points: 10},
				{ID: "q3", Kind: domain.QuestionMultipleChoice, Prompt: "Which keyword declares a constant?",
					Options: []string{"var", "let", "const"}, Correct: domain.IndexAnswer(2), Points: 10},
			},
		},
		{
			ID:           "quiz-go",
			Title:        "Go Warmup",
			PassingScore: 75,
			TotalPoints:  40,
			Questions: []domain.Question{
				{ID: "q1", Kind: domain.QuestionMultipleChoice, Prompt: "Which builtin grows a slice?",
					Options: []string{"push", "append", "grow"}, Correct: domain.IndexAnswer(1), Points: 15},
				{ID: "q2", Kind: domain.QuestionCoding, Prompt: "Write add(a, b int) int.",
					Correct: domain.TextAnswer("func add(a, b int) int { return a + b }"), Points: 25},
			},
		},
	}
}

func testHackathons() []domain.Hackathon {
	return []domain.Hackathon{
		{ID: "hack-1", Title: "Full-Stack Challenge", Status: "active"},
	}
}
