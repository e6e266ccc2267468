package quiz

import "fmt"

// NextStep tells the presentation layer where Advance leads from a multiple-choice question.
type NextStep string

const (
	NextQuestion NextStep = "next"
	NextEssay    NextStep = "to_essay"
	NextResults  NextStep = "results"
)

// Progress is the position among all questions, multiple-choice and essays together.
type Progress struct {
	Position int
	Total    int
}

// Fraction returns Position/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Position) / float64(p.Total)
}

// MultipleChoiceView is what the presentation layer needs to draw the current multiple-choice question.
type MultipleChoiceView struct {
	Question        MultipleChoiceQuestion
	Position        int // 1-based
	Total           int
	Answered        bool
	SelectedIndex   int // valid only when Answered
	Correct         bool
	ShowExplanation bool
	Next            NextStep
	CorrectCount    int
	EssayCount      int
	Progress        Progress
}

// EssayView is what the presentation layer needs to draw the current essay question.
type EssayView struct {
	Question     EssayQuestion
	Position     int // 1-based
	Total        int
	Text         string
	CanAdvance   bool
	IsLast       bool
	CorrectCount int
	MCTotal      int
	Progress     Progress
}

func (s *Session) totalQuestions() int {
	return len(s.shuffledMultipleChoice) + len(s.shuffledEssays)
}

// MultipleChoiceView returns the view of the current multiple-choice question.
func (s *Session) MultipleChoiceView() (MultipleChoiceView, error) {
	if s.phase != PhaseMultipleChoice {
		return MultipleChoiceView{}, fmt.Errorf("%w: no multiple-choice question in phase %s", ErrInvalidState, s.phase)
	}

	q := s.shuffledMultipleChoice[s.currentMCIndex]
	answered := s.selectedAnswerIndex != noAnswer

	next := NextQuestion
	if s.currentMCIndex == len(s.shuffledMultipleChoice)-1 {
		next = NextResults
		if len(s.shuffledEssays) > 0 {
			next = NextEssay
		}
	}

	return MultipleChoiceView{
		Question:        q,
		Position:        s.currentMCIndex + 1,
		Total:           len(s.shuffledMultipleChoice),
		Answered:        answered,
		SelectedIndex:   s.selectedAnswerIndex,
		Correct:         answered && s.selectedAnswerIndex == q.CorrectAnswerIndex,
		ShowExplanation: answered,
		Next:            next,
		CorrectCount:    s.correctCount,
		EssayCount:      len(s.shuffledEssays),
		Progress: Progress{
			Position: s.currentMCIndex + 1,
			Total:    s.totalQuestions(),
		},
	}, nil
}

// EssayView returns the view of the current essay question.
func (s *Session) EssayView() (EssayView, error) {
	if s.phase != PhaseEssay {
		return EssayView{}, fmt.Errorf("%w: no essay question in phase %s", ErrInvalidState, s.phase)
	}

	return EssayView{
		Question:     s.shuffledEssays[s.currentEssayIndex],
		Position:     s.currentEssayIndex + 1,
		Total:        len(s.shuffledEssays),
		Text:         s.currentEssayText,
		CanAdvance:   essayLongEnough(s.currentEssayText),
		IsLast:       s.currentEssayIndex == len(s.shuffledEssays)-1,
		CorrectCount: s.correctCount,
		MCTotal:      len(s.shuffledMultipleChoice),
		Progress: Progress{
			Position: len(s.shuffledMultipleChoice) + s.currentEssayIndex + 1,
			Total:    s.totalQuestions(),
		},
	}, nil
}
