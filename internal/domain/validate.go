package domain

import "fmt"

// Validate checks the catalog invariants for a quiz:
//   - TotalPoints equals the sum of question points,
//   - choice questions carry an in-range correct option index,
//   - coding questions carry a text answer.
//
// Loaders run this before serving content so a broken quiz never reaches the
// scoring engine.
func (q Quiz) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quiz has no id")
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %s has no questions", q.ID)
	}
	sum := 0
	for _, question := range q.Questions {
		if question.Points <= 0 {
			return fmt.Errorf("quiz %s question %s has non-positive points", q.ID, question.ID)
		}
		sum += question.Points

		switch question.Kind {
		case QuestionMultipleChoice:
			if !question.Correct.IsIndex() || question.Correct.Index() < 0 || question.Correct.Index() >= len(question.Options) {
				return fmt.Errorf("quiz %s question %s: correct index out of range", q.ID, question.ID)
			}
		case QuestionTrueFalse:
			if !question.Correct.IsIndex() || question.Correct.Index() < 0 || question.Correct.Index() > 1 {
				return fmt.Errorf("quiz %s question %s: true/false answer must be index 0 or 1", q.ID, question.ID)
			}
		case QuestionCoding:
			if question.Correct.IsIndex() || question.Correct.IsZero() {
				return fmt.Errorf("quiz %s question %s: coding answer must be text", q.ID, question.ID)
			}
		default:
			return fmt.Errorf("quiz %s question %s: unknown kind %q", q.ID, question.ID, question.Kind)
		}
	}
	if sum != q.TotalPoints {
		return fmt.Errorf("quiz %s: question points sum to %d, totalPoints says %d", q.ID, sum, q.TotalPoints)
	}
	return nil
}
