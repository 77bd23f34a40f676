package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Session tracks one quiz run. It lives for a single invocation and is
// never persisted.
type Session struct {
	ID        string
	Questions []Question
	Correct   int
	Total     int
}

func NewSession(questions []Question) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Questions: questions,
		Total:     len(questions),
	}
}

// Grade checks the resolved answer text against the question's correct
// option and updates the score.
func (s *Session) Grade(question Question, answerText string) bool {
	correct := AnswersEqual(answerText, question.CorrectOption().Text)
	if correct {
		s.Correct++
	}
	return correct
}

// Summary renders the final score line, e.g. "17/20 (85.0%)".
func (s *Session) Summary() string {
	percent := 0.0
	if s.Total > 0 {
		percent = float64(s.Correct) / float64(s.Total) * 100
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", s.Correct, s.Total, percent)
}
