package quiz

import "fmt"

// Phase is the current stage of a quiz session.
type Phase string

const (
	PhaseMultipleChoice Phase = "multiple-choice"
	PhaseEssay          Phase = "essay"
	PhaseFinished       Phase = "finished"
)

// noAnswer marks a multiple-choice slot that has not been answered yet.
const noAnswer = -1

// Session owns the state of one quiz run. It is not safe for concurrent use.
type Session struct {
	title string
	src   RandSource

	// Caller input, kept for Restart.
	multipleChoice []MultipleChoiceQuestion
	essays         []EssayQuestion

	shuffledMultipleChoice []MultipleChoiceQuestion
	shuffledEssays         []EssayQuestion

	phase               Phase
	currentMCIndex      int
	currentEssayIndex   int
	selectedAnswerIndex int
	currentEssayText    string

	multipleChoiceAnswers []int
	essayAnswers          []string
	essayScores           []float64
	correctCount          int
}

// Option configures a Session.
type Option func(*Session)

// WithRandSource sets the source used to shuffle questions.
func WithRandSource(src RandSource) Option {
	return func(s *Session) {
		s.src = src
	}
}

// Start validates the question set and returns a fresh session in the multiple-choice phase.
// The caller's slices are copied and never modified.
func Start(title string, mcQuestions []MultipleChoiceQuestion, essayQuestions []EssayQuestion, opts ...Option) (*Session, error) {
	if err := validate(mcQuestions); err != nil {
		return nil, err
	}

	s := &Session{
		title:          title,
		multipleChoice: append([]MultipleChoiceQuestion(nil), mcQuestions...),
		essays:         append([]EssayQuestion(nil), essayQuestions...),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = NewRandSource()
	}

	s.reset()
	return s, nil
}

func validate(questions []MultipleChoiceQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no multiple-choice questions", ErrInvalidInput)
	}

	for i, q := range questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %d (id %d) has %d options, need at least 2",
				ErrInvalidInput, i, q.ID, len(q.Options))
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			return fmt.Errorf("%w: question %d (id %d) has correct answer index %d out of range [0, %d)",
				ErrInvalidInput, i, q.ID, q.CorrectAnswerIndex, len(q.Options))
		}
	}

	return nil
}

// reset shuffles the questions again and clears every answer, cursor and score.
func (s *Session) reset() {
	s.shuffledMultipleChoice = Shuffle(s.multipleChoice, s.src)
	s.shuffledEssays = nil
	if len(s.essays) > 0 {
		s.shuffledEssays = Shuffle(s.essays, s.src)
	}

	s.phase = PhaseMultipleChoice
	s.currentMCIndex = 0
	s.currentEssayIndex = 0
	s.selectedAnswerIndex = noAnswer
	s.currentEssayText = ""

	s.multipleChoiceAnswers = make([]int, len(s.shuffledMultipleChoice))
	for i := range s.multipleChoiceAnswers {
		s.multipleChoiceAnswers[i] = noAnswer
	}
	s.essayAnswers = make([]string, len(s.shuffledEssays))
	s.essayScores = nil
	s.correctCount = 0
}

// Restart discards all answers and starts over with a new shuffle.
func (s *Session) Restart() {
	s.reset()
}

// SubmitMultipleChoiceAnswer records the selected option for the current question.
func (s *Session) SubmitMultipleChoiceAnswer(index int) error {
	if s.phase != PhaseMultipleChoice {
		return fmt.Errorf("%w: cannot answer multiple-choice in phase %s", ErrInvalidState, s.phase)
	}
	if s.selectedAnswerIndex != noAnswer {
		return fmt.Errorf("%w: question %d already answered", ErrInvalidState, s.currentMCIndex+1)
	}

	q := s.shuffledMultipleChoice[s.currentMCIndex]
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("%w: option index %d out of range [0, %d)", ErrInvalidInput, index, len(q.Options))
	}

	s.selectedAnswerIndex = index
	s.multipleChoiceAnswers[s.currentMCIndex] = index
	if index == q.CorrectAnswerIndex {
		s.correctCount++
	}

	return nil
}

// SetEssayText replaces the text of the essay being composed.
func (s *Session) SetEssayText(text string) error {
	if s.phase != PhaseEssay {
		return fmt.Errorf("%w: cannot set essay text in phase %s", ErrInvalidState, s.phase)
	}

	s.currentEssayText = text
	return nil
}

// Advance moves to the next question, the essay section, or the results.
func (s *Session) Advance() error {
	switch s.phase {
	case PhaseMultipleChoice:
		return s.advanceMultipleChoice()
	case PhaseEssay:
		return s.advanceEssay()
	default:
		return fmt.Errorf("%w: quiz already finished", ErrInvalidState)
	}
}

func (s *Session) advanceMultipleChoice() error {
	if s.selectedAnswerIndex == noAnswer {
		return fmt.Errorf("%w: question %d not answered", ErrInvalidState, s.currentMCIndex+1)
	}

	if s.currentMCIndex < len(s.shuffledMultipleChoice)-1 {
		s.currentMCIndex++
		s.selectedAnswerIndex = noAnswer
		return nil
	}

	s.selectedAnswerIndex = noAnswer
	if len(s.shuffledEssays) > 0 {
		s.phase = PhaseEssay
		s.currentEssayIndex = 0
		s.currentEssayText = ""
		return nil
	}

	s.finish()
	return nil
}

func (s *Session) advanceEssay() error {
	if !essayLongEnough(s.currentEssayText) {
		return fmt.Errorf("%w: essay answer must be at least %d characters", ErrInvalidState, MinEssayLength)
	}

	s.essayAnswers[s.currentEssayIndex] = s.currentEssayText
	s.currentEssayText = ""

	if s.currentEssayIndex < len(s.shuffledEssays)-1 {
		s.currentEssayIndex++
		return nil
	}

	s.finish()
	return nil
}

// finish scores every essay and enters the terminal phase.
func (s *Session) finish() {
	s.essayScores = make([]float64, len(s.shuffledEssays))
	for i, q := range s.shuffledEssays {
		s.essayScores[i] = ScoreEssay(s.essayAnswers[i], q.KeyPoints)
	}
	s.phase = PhaseFinished
}

// Title returns the quiz title.
func (s *Session) Title() string { return s.title }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// CorrectCount returns the number of correct multiple-choice answers so far.
func (s *Session) CorrectCount() int { return s.correctCount }

// MultipleChoiceCount returns the number of multiple-choice questions.
func (s *Session) MultipleChoiceCount() int { return len(s.shuffledMultipleChoice) }

// EssayCount returns the number of essay questions.
func (s *Session) EssayCount() int { return len(s.shuffledEssays) }

// MultipleChoiceQuestions returns the questions in presentation order.
func (s *Session) MultipleChoiceQuestions() []MultipleChoiceQuestion {
	return append([]MultipleChoiceQuestion(nil), s.shuffledMultipleChoice...)
}

// EssayQuestions returns the essays in presentation order.
func (s *Session) EssayQuestions() []EssayQuestion {
	return append([]EssayQuestion(nil), s.shuffledEssays...)
}
