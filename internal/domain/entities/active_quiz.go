package entities

import (
	"time"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
)

// ActiveQuiz binds a running quiz session to a chat.
type ActiveQuiz struct {
	Token      string // changes on every start, embedded in callback data
	ChatID     int64
	MaterialID string
	MessageID  int // message showing the current question, 0 until sent
	Session    *quiz.Session
	LastActive time.Time
}

// NewActiveQuiz creates an active quiz touched at the current time.
func NewActiveQuiz(token string, chatID int64, materialID string, session *quiz.Session) *ActiveQuiz {
	return &ActiveQuiz{
		Token:      token,
		ChatID:     chatID,
		MaterialID: materialID,
		Session:    session,
		LastActive: time.Now(),
	}
}

// Position is the 1-based overall position of the current question.
func (a *ActiveQuiz) Position() int {
	switch a.Session.Phase() {
	case quiz.PhaseMultipleChoice:
		if v, err := a.Session.MultipleChoiceView(); err == nil {
			return v.Progress.Position
		}
	case quiz.PhaseEssay:
		if v, err := a.Session.EssayView(); err == nil {
			return v.Progress.Position
		}
	}
	return 0
}
