package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestStorage() (*QuizStorage, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	s := NewQuizStorage()
	s.now = clock.now
	return s, clock
}

func TestQuizStorage_StoreReplaces(t *testing.T) {
	s, _ := newTestStorage()

	s.Store(&entities.ActiveQuiz{Token: "a", ChatID: 1})
	s.Store(&entities.ActiveQuiz{Token: "b", ChatID: 1})

	q, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", q.Token)
	assert.Equal(t, 1, s.Len())

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)
}

func TestQuizStorage_DeleteIdle(t *testing.T) {
	s, clock := newTestStorage()

	s.Store(&entities.ActiveQuiz{ChatID: 1})
	s.Store(&entities.ActiveQuiz{ChatID: 2})

	clock.t = clock.t.Add(20 * time.Minute)
	s.Touch(2)
	s.Touch(3) // unknown chat is ignored

	removed := s.DeleteIdle(clock.t.Add(-10 * time.Minute))
	assert.Equal(t, []int64{1}, removed)

	_, ok := s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestQuizStorage_Concurrent(t *testing.T) {
	s := NewQuizStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			s.Store(&entities.ActiveQuiz{ChatID: chatID})
			s.Touch(chatID)
			_, _ = s.Get(chatID)
			s.DeleteIdle(time.Now().Add(-time.Hour))
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
