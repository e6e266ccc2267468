package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
)

// QuizStorage provides in-memory storage for active quizzes by chat ID.
type QuizStorage struct {
	mu      sync.RWMutex
	quizzes map[int64]*entities.ActiveQuiz
	now     func() time.Time
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		quizzes: make(map[int64]*entities.ActiveQuiz),
		now:     time.Now,
	}
}

// Store saves the active quiz of a chat, replacing any previous one.
func (s *QuizStorage) Store(q *entities.ActiveQuiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.LastActive = s.now()
	s.quizzes[q.ChatID] = q
}

// Get retrieves the active quiz of a chat.
func (s *QuizStorage) Get(chatID int64) (*entities.ActiveQuiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quizzes[chatID]
	return q, ok
}

// Touch marks the chat's quiz as used now.
func (s *QuizStorage) Touch(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q, ok := s.quizzes[chatID]; ok {
		q.LastActive = s.now()
	}
}

// Delete removes the active quiz of a chat.
func (s *QuizStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, chatID)
}

// DeleteIdle removes quizzes not used since before and returns their chat IDs.
func (s *QuizStorage) DeleteIdle(before time.Time) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []int64
	for chatID, q := range s.quizzes {
		if q.LastActive.Before(before) {
			delete(s.quizzes, chatID)
			removed = append(removed, chatID)
		}
	}
	return removed
}

// Len returns the number of active quizzes.
func (s *QuizStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quizzes)
}
