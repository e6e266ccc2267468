package quiz

import (
	"fmt"
	"math"
)

// Grade is the overall verdict shown with the result.
type Grade string

const (
	GradeExcellent    Grade = "excellent"
	GradeGood         Grade = "good"
	GradeKeepLearning Grade = "keep_learning"
)

// Band groups an essay score percentage for display.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// MultipleChoiceReview compares the selected option with the correct one.
type MultipleChoiceReview struct {
	Question       MultipleChoiceQuestion
	Answered       bool
	SelectedIndex  int
	SelectedOption string
	CorrectOption  string
	Correct        bool
}

// EssayReview shows a submitted essay next to the reference material.
type EssayReview struct {
	Question     EssayQuestion
	Answer       string
	Score        float64
	ScorePercent int
	Band         Band
}

// Result is the final report of a finished session.
type Result struct {
	Title                 string
	Score                 float64 // correct multiple-choice count plus summed essay scores
	Total                 int
	Percentage            int
	Grade                 Grade
	MultipleChoiceCorrect int
	MultipleChoiceTotal   int
	EssayScore            float64
	EssayTotal            int
	MultipleChoice        []MultipleChoiceReview
	Essays                []EssayReview
}

// Result returns the report of a finished session.
func (s *Session) Result() (Result, error) {
	if s.phase != PhaseFinished {
		return Result{}, fmt.Errorf("%w: results unavailable in phase %s", ErrInvalidState, s.phase)
	}

	var essayScore float64
	for _, sc := range s.essayScores {
		essayScore += sc
	}

	res := Result{
		Title:                 s.title,
		Score:                 float64(s.correctCount) + essayScore,
		Total:                 s.totalQuestions(),
		MultipleChoiceCorrect: s.correctCount,
		MultipleChoiceTotal:   len(s.shuffledMultipleChoice),
		EssayScore:            essayScore,
		EssayTotal:            len(s.shuffledEssays),
		MultipleChoice:        make([]MultipleChoiceReview, 0, len(s.shuffledMultipleChoice)),
		Essays:                make([]EssayReview, 0, len(s.shuffledEssays)),
	}
	res.Percentage = percent(res.Score, float64(res.Total))
	res.Grade = gradeFor(res.Percentage)

	for i, q := range s.shuffledMultipleChoice {
		selected := s.multipleChoiceAnswers[i]
		review := MultipleChoiceReview{
			Question:      q,
			Answered:      selected != noAnswer,
			SelectedIndex: selected,
			CorrectOption: q.CorrectOption(),
			Correct:       selected == q.CorrectAnswerIndex,
		}
		if review.Answered {
			review.SelectedOption = q.Options[selected]
		}
		res.MultipleChoice = append(res.MultipleChoice, review)
	}

	for i, q := range s.shuffledEssays {
		pct := percent(s.essayScores[i], 1)
		res.Essays = append(res.Essays, EssayReview{
			Question:     q,
			Answer:       s.essayAnswers[i],
			Score:        s.essayScores[i],
			ScorePercent: pct,
			Band:         bandFor(pct),
		})
	}

	return res, nil
}

func percent(value, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(value / total * 100))
}

func gradeFor(pct int) Grade {
	switch {
	case pct >= 80:
		return GradeExcellent
	case pct >= 60:
		return GradeGood
	default:
		return GradeKeepLearning
	}
}

func bandFor(pct int) Band {
	switch {
	case pct >= 70:
		return BandHigh
	case pct >= 40:
		return BandMedium
	default:
		return BandLow
	}
}
