package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
	"github.com/aliskhannn/tahsin-quran-bot/internal/storage"
)

const chatID int64 = 42

func newTestQuizService(t *testing.T) (*QuizService, *storage.QuizStorage) {
	t.Helper()

	store := storage.NewQuizStorage()
	svc := NewQuizService(testContent(), store, zap.NewNop())
	svc.randSource = newIdentitySource

	n := 0
	svc.newToken = func() string {
		n++
		return []string{"tok-a", "tok-b", "tok-c"}[n-1]
	}
	return svc, store
}

func TestQuizService_StartErrors(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, chatID, "tidak-ada")
	require.ErrorIs(t, err, repository.ErrMaterialNotFound)

	_, err = svc.Start(ctx, chatID, "makhraj")
	require.ErrorIs(t, err, ErrMaterialUnavailable)

	_, err = svc.Start(ctx, chatID, "sifat")
	require.ErrorIs(t, err, ErrNoQuestionsAvailable)

	_, err = svc.Current(ctx, chatID)
	require.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_FullFlow(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx, chatID, "mabadi")
	require.NoError(t, err)
	assert.Equal(t, "tok-a", state.Token)
	assert.Equal(t, quiz.PhaseMultipleChoice, state.Phase)
	require.NotNil(t, state.MultipleChoice)
	assert.Equal(t, 1, state.Position())
	assert.Equal(t, 3, state.MultipleChoice.Progress.Total)

	state, err = svc.Answer(ctx, chatID, "tok-a", 1, 0)
	require.NoError(t, err)
	assert.True(t, state.MultipleChoice.Correct)

	state, err = svc.Next(ctx, chatID, "tok-a", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Position())

	_, err = svc.Answer(ctx, chatID, "tok-a", 2, 0)
	require.NoError(t, err)

	state, err = svc.Next(ctx, chatID, "tok-a", 2)
	require.NoError(t, err)
	assert.Equal(t, quiz.PhaseEssay, state.Phase)
	require.NotNil(t, state.Essay)
	assert.Equal(t, 3, state.Position())

	_, err = svc.SetEssayText(ctx, chatID, "pendek")
	require.NoError(t, err)
	_, err = svc.Next(ctx, chatID, "tok-a", 3)
	require.ErrorIs(t, err, quiz.ErrInvalidState)

	state, err = svc.SetEssayText(ctx, chatID, "Wajib bagi setiap muslim yang membaca")
	require.NoError(t, err)
	assert.True(t, state.Essay.CanAdvance)

	state, err = svc.Next(ctx, chatID, "tok-a", 3)
	require.NoError(t, err)
	assert.Equal(t, quiz.PhaseFinished, state.Phase)
	require.NotNil(t, state.Result)
	assert.Zero(t, state.Position())

	// One of two multiple-choice correct, essay matches "setiap muslim" only.
	assert.Equal(t, 1, state.Result.MultipleChoiceCorrect)
	assert.InDelta(t, 0.5, state.Result.EssayScore, 1e-9)
	assert.Equal(t, 50, state.Result.Percentage)
	assert.Equal(t, quiz.GradeKeepLearning, state.Result.Grade)
}

func TestQuizService_StaleActions(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, chatID, "mabadi")
	require.NoError(t, err)

	_, err = svc.Answer(ctx, chatID, "other", 1, 0)
	require.ErrorIs(t, err, ErrStaleQuiz)

	_, err = svc.Answer(ctx, chatID, "tok-a", 2, 0)
	require.ErrorIs(t, err, ErrStaleQuiz)

	// A new start replaces the quiz and invalidates the old token.
	_, err = svc.Start(ctx, chatID, "mabadi")
	require.NoError(t, err)
	_, err = svc.Answer(ctx, chatID, "tok-a", 1, 0)
	require.ErrorIs(t, err, ErrStaleQuiz)

	_, err = svc.Answer(ctx, chatID, "tok-b", 1, 0)
	require.NoError(t, err)

	// Pressing the same answer twice is rejected by the engine.
	_, err = svc.Answer(ctx, chatID, "tok-b", 1, 1)
	require.ErrorIs(t, err, quiz.ErrInvalidState)

	_, err = svc.Answer(ctx, 7, "tok-b", 1, 0)
	require.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_EssayTextOutsideEssayPhase(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	_, err := svc.SetEssayText(ctx, chatID, "jawaban yang cukup panjang")
	require.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = svc.Start(ctx, chatID, "mabadi")
	require.NoError(t, err)

	_, err = svc.SetEssayText(ctx, chatID, "jawaban yang cukup panjang")
	require.ErrorIs(t, err, quiz.ErrInvalidState)
}

func TestQuizService_RestartAndAbandon(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, chatID, "mabadi")
	require.NoError(t, err)
	_, err = svc.Answer(ctx, chatID, "tok-a", 1, 0)
	require.NoError(t, err)

	_, err = svc.Restart(ctx, chatID, "nope")
	require.ErrorIs(t, err, ErrStaleQuiz)

	state, err := svc.Restart(ctx, chatID, "tok-a")
	require.NoError(t, err)
	assert.False(t, state.MultipleChoice.Answered)
	assert.Zero(t, state.MultipleChoice.CorrectCount)

	svc.SetMessageID(ctx, chatID, "tok-a", 99)
	state, err = svc.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 99, state.MessageID)

	svc.SetMessageID(ctx, chatID, "stale", 100)
	state, err = svc.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 99, state.MessageID)

	require.NoError(t, svc.Abandon(ctx, chatID))
	require.ErrorIs(t, svc.Abandon(ctx, chatID), ErrNoActiveQuiz)
	assert.Zero(t, svc.ActiveCount())
}

func TestQuizService_SweepIdle(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, chatID, "mabadi")
	require.NoError(t, err)

	assert.Zero(t, svc.SweepIdle(ctx, time.Hour))
	assert.Equal(t, 1, svc.ActiveCount())

	assert.Equal(t, 1, svc.SweepIdle(ctx, -time.Second))
	assert.Zero(t, svc.ActiveCount())
}
