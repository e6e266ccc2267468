package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
)

var (
	ErrNoActiveQuiz         = errors.New("no active quiz")
	ErrStaleQuiz            = errors.New("stale quiz action")
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrMaterialUnavailable  = errors.New("material unavailable")
)

// QuizState is a snapshot of an active quiz for rendering. Exactly one of
// MultipleChoice, Essay and Result is set, matching Phase.
type QuizState struct {
	Token          string
	ChatID         int64
	MaterialID     string
	MessageID      int
	Title          string
	Phase          quiz.Phase
	MultipleChoice *quiz.MultipleChoiceView
	Essay          *quiz.EssayView
	Result         *quiz.Result
}

// Position returns the overall 1-based position of the current question, 0 when finished.
func (st *QuizState) Position() int {
	switch {
	case st.MultipleChoice != nil:
		return st.MultipleChoice.Progress.Position
	case st.Essay != nil:
		return st.Essay.Progress.Position
	default:
		return 0
	}
}

// QuizService runs quiz sessions for chats. Sessions are not safe for
// concurrent use, so every access goes through mu.
type QuizService struct {
	mu         sync.Mutex
	content    ContentRepository
	storage    QuizStorage
	logger     *zap.Logger
	newToken   func() string
	randSource func() quiz.RandSource
}

func NewQuizService(content ContentRepository, storage QuizStorage, logger *zap.Logger) *QuizService {
	return &QuizService{
		content:    content,
		storage:    storage,
		logger:     logger,
		newToken:   uuid.NewString,
		randSource: quiz.NewRandSource,
	}
}

// Start begins a quiz for the material, replacing the chat's previous quiz.
func (s *QuizService) Start(_ context.Context, chatID int64, materialID string) (*QuizState, error) {
	material, err := s.content.GetMaterial(materialID)
	if err != nil {
		return nil, err
	}
	if !material.Available {
		return nil, ErrMaterialUnavailable
	}
	if !material.HasQuiz() {
		return nil, ErrNoQuestionsAvailable
	}

	session, err := quiz.Start(material.Title, material.Quiz, material.EssayQuestions, quiz.WithRandSource(s.randSource()))
	if err != nil {
		return nil, fmt.Errorf("start quiz %s: %w", materialID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	active := entities.NewActiveQuiz(s.newToken(), chatID, material.ID, session)
	s.storage.Store(active)

	s.logger.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.String("material_id", material.ID),
		zap.Int("multiple_choice", session.MultipleChoiceCount()),
		zap.Int("essays", session.EssayCount()),
	)

	return snapshot(active)
}

// Current returns the chat's active quiz.
func (s *QuizService) Current(_ context.Context, chatID int64) (*QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.storage.Get(chatID)
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	return snapshot(active)
}

// Answer submits the option at idx for the question at position pos.
func (s *QuizService) Answer(_ context.Context, chatID int64, token string, pos, idx int) (*QuizState, error) {
	return s.update(chatID, token, pos, func(a *entities.ActiveQuiz) error {
		return a.Session.SubmitMultipleChoiceAnswer(idx)
	})
}

// Next advances past the question at position pos.
func (s *QuizService) Next(_ context.Context, chatID int64, token string, pos int) (*QuizState, error) {
	state, err := s.update(chatID, token, pos, func(a *entities.ActiveQuiz) error {
		return a.Session.Advance()
	})
	if err == nil && state.Result != nil {
		s.logger.Info("quiz finished",
			zap.Int64("chat_id", chatID),
			zap.String("material_id", state.MaterialID),
			zap.Int("percentage", state.Result.Percentage),
		)
	}
	return state, err
}

// SetEssayText stores text as the answer draft of the current essay question.
func (s *QuizService) SetEssayText(_ context.Context, chatID int64, text string) (*QuizState, error) {
	return s.update(chatID, "", 0, func(a *entities.ActiveQuiz) error {
		return a.Session.SetEssayText(text)
	})
}

// Restart reshuffles the chat's quiz and starts it over.
func (s *QuizService) Restart(_ context.Context, chatID int64, token string) (*QuizState, error) {
	return s.update(chatID, token, 0, func(a *entities.ActiveQuiz) error {
		a.Session.Restart()
		return nil
	})
}

// SetMessageID records the message that shows the quiz.
func (s *QuizService) SetMessageID(_ context.Context, chatID int64, token string, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if active, ok := s.storage.Get(chatID); ok && active.Token == token {
		active.MessageID = messageID
	}
}

// Abandon drops the chat's active quiz.
func (s *QuizService) Abandon(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.storage.Get(chatID); !ok {
		return ErrNoActiveQuiz
	}
	s.storage.Delete(chatID)

	s.logger.Info("quiz abandoned", zap.Int64("chat_id", chatID))
	return nil
}

// SweepIdle removes quizzes idle for longer than ttl and returns how many were removed.
func (s *QuizService) SweepIdle(_ context.Context, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.storage.DeleteIdle(time.Now().Add(-ttl)))
}

// ActiveCount returns the number of chats with an active quiz.
func (s *QuizService) ActiveCount() int {
	return s.storage.Len()
}

// update applies fn to the chat's quiz after checking token and position.
// An empty token or zero position skips that check.
func (s *QuizService) update(chatID int64, token string, pos int, fn func(a *entities.ActiveQuiz) error) (*QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.storage.Get(chatID)
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	if token != "" && active.Token != token {
		return nil, ErrStaleQuiz
	}
	if pos != 0 && active.Position() != pos {
		return nil, ErrStaleQuiz
	}

	if err := fn(active); err != nil {
		s.logger.Debug("quiz action rejected",
			zap.Int64("chat_id", chatID),
			zap.String("phase", string(active.Session.Phase())),
			zap.Error(err),
		)
		return nil, err
	}

	s.storage.Touch(chatID)
	return snapshot(active)
}

func snapshot(a *entities.ActiveQuiz) (*QuizState, error) {
	state := &QuizState{
		Token:      a.Token,
		ChatID:     a.ChatID,
		MaterialID: a.MaterialID,
		MessageID:  a.MessageID,
		Title:      a.Session.Title(),
		Phase:      a.Session.Phase(),
	}

	switch state.Phase {
	case quiz.PhaseMultipleChoice:
		view, err := a.Session.MultipleChoiceView()
		if err != nil {
			return nil, err
		}
		state.MultipleChoice = &view
	case quiz.PhaseEssay:
		view, err := a.Session.EssayView()
		if err != nil {
			return nil, err
		}
		state.Essay = &view
	case quiz.PhaseFinished:
		res, err := a.Session.Result()
		if err != nil {
			return nil, err
		}
		state.Result = &res
	}

	return state, nil
}
