package telegram

import (
	"context"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, username, firstName, languageCode string) error
}

type MaterialService interface {
	List(ctx context.Context) []*entities.Material
	Get(ctx context.Context, id string) (*entities.Material, error)
	Find(ctx context.Context, input string) (*entities.Material, error)
}

type QuizService interface {
	Start(ctx context.Context, chatID int64, materialID string) (*service.QuizState, error)
	Current(ctx context.Context, chatID int64) (*service.QuizState, error)
	Answer(ctx context.Context, chatID int64, token string, pos, idx int) (*service.QuizState, error)
	Next(ctx context.Context, chatID int64, token string, pos int) (*service.QuizState, error)
	SetEssayText(ctx context.Context, chatID int64, text string) (*service.QuizState, error)
	Restart(ctx context.Context, chatID int64, token string) (*service.QuizState, error)
	SetMessageID(ctx context.Context, chatID int64, token string, messageID int)
	Abandon(ctx context.Context, chatID int64) error
}

type LetterService interface {
	Options(ctx context.Context) service.LetterFilterOptions
	Get(ctx context.Context, index int) (entities.ArabicLetter, error)
	Filter(ctx context.Context, f entities.LetterFilter) []service.IndexedLetter
	ResolveFilter(idx service.FilterIndexes, query string) (entities.LetterFilter, error)
	ActiveFilterCount(f entities.LetterFilter) int
}
