package app

import (
	"context"

	"hackquest-service/internal/domain"

	"github.com/google/uuid"
)

// SubmitQuiz grades an ordered answer list against the quiz, appends the
// attempt to the history and updates the user's counters and points.
//
// Grading is positional: the question at position i is graded against
// answers[i] by strict equality. A missing position counts as incorrect;
// extra positions are ignored. Nothing is mutated when the quiz or user is
// unknown.
func (s *Service) SubmitQuiz(ctx context.Context, userID, quizID string, answers []domain.AnswerValue, timeSpentSeconds int) (domain.QuizAttempt, error) {
	if quizID == "" {
		return domain.QuizAttempt{}, domain.ErrInvalidInput
	}
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.QuizAttempt{}, err
	}
	if _, err := s.users.Get(userID); err != nil {
		return domain.QuizAttempt{}, err
	}

	score := 0
	records := make([]domain.AnswerRecord, 0, len(quiz.Questions))
	for i, question := range quiz.Questions {
		var submitted domain.AnswerValue
		if i < len(answers) {
			submitted = answers[i]
		}
		correct := submitted.Equal(question.Correct)
		awarded := 0
		if correct {
			awarded = question.Points
			score += question.Points
		}
		records = append(records, domain.AnswerRecord{
			QuestionID: question.ID,
			Answer:     submitted,
			Correct:    correct,
			Points:     awarded,
		})
	}

	percentage := 0.0
	if quiz.TotalPoints > 0 {
		percentage = float64(score) / float64(quiz.TotalPoints) * 100
	}
	passed := percentage >= float64(quiz.PassingScore)

	attempt := domain.QuizAttempt{
		ID:          uuid.NewString(),
		QuizID:      quiz.ID,
		UserID:      userID,
		Answers:     records,
		Score:       score,
		TotalPoints: quiz.TotalPoints,
		Percentage:  percentage,
		TimeSpent:   timeSpentSeconds,
		CompletedAt: s.now(),
		Passed:      passed,
	}
	s.attempts.Append(attempt)

	if _, err := s.users.ApplyQuizResult(userID, score, passed); err != nil {
		return domain.QuizAttempt{}, err
	}
	if s.mirror != nil && score > 0 {
		// best-effort; the user store stays authoritative
		_ = s.mirror.AddPoints(ctx, userID, score)
	}
	s.broadcast()
	return attempt, nil
}
