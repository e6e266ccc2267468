// Package quiz implements the quiz flow used by every learning material:
// shuffled multiple-choice questions, optional essay questions scored by
// key-point overlap, and the final result report.
package quiz

// MultipleChoiceQuestion is a question with a fixed set of options and exactly one correct option.
type MultipleChoiceQuestion struct {
	ID                 int      `json:"id" yaml:"id"`
	Question           string   `json:"question" yaml:"question" validate:"required"`
	Options            []string `json:"options" yaml:"options" validate:"min=2,dive,required"`
	CorrectAnswerIndex int      `json:"correctAnswer" yaml:"correctAnswer" validate:"gte=0"`
	Explanation        string   `json:"explanation" yaml:"explanation"`
}

// CorrectOption returns the text of the correct option.
func (q MultipleChoiceQuestion) CorrectOption() string {
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswerIndex]
}

// EssayQuestion is a free-text question scored against its key points.
type EssayQuestion struct {
	ID           int      `json:"id" yaml:"id"`
	Question     string   `json:"question" yaml:"question" validate:"required"`
	SampleAnswer string   `json:"sampleAnswer" yaml:"sampleAnswer"`
	KeyPoints    []string `json:"keyPoints" yaml:"keyPoints"`
}
