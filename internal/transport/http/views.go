package http

import (
	"time"

	"hackquest-service/internal/domain"
)

// questionView is the question payload served to clients: the correct answer
// and its explanation are redacted so a quiz cannot be solved by inspecting
// the catalog response.
type questionView struct {
	ID          string              `json:"id"`
	Kind        domain.QuestionKind `json:"type"`
	Prompt      string              `json:"question"`
	Options     []string            `json:"options,omitempty"`
	Points      int                 `json:"points"`
	CodeSnippet string              `json:"codeSnippet,omitempty"`
}

type quizView struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Difficulty   string         `json:"difficulty"`
	Category     string         `json:"category"`
	Questions    []questionView `json:"questions"`
	TimeLimit    int            `json:"timeLimit"`
	PassingScore int            `json:"passingScore"`
	TotalPoints  int            `json:"totalPoints"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func redactQuiz(quiz domain.Quiz) quizView {
	questions := make([]questionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, questionView{
			ID:          q.ID,
			Kind:        q.Kind,
			Prompt:      q.Prompt,
			Options:     q.Options,
			Points:      q.Points,
			CodeSnippet: q.CodeSnippet,
		})
	}
	return quizView{
		ID:           quiz.ID,
		Title:        quiz.Title,
		Description:  quiz.Description,
		Difficulty:   quiz.Difficulty,
		Category:     quiz.Category,
		Questions:    questions,
		TimeLimit:    quiz.TimeLimit,
		PassingScore: quiz.PassingScore,
		TotalPoints:  quiz.TotalPoints,
		CreatedAt:    quiz.CreatedAt,
	}
}
