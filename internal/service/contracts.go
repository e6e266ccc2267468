package service

import (
	"context"
	"time"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
}

// ContentRepository serves the bundled materials and letters.
type ContentRepository interface {
	ListMaterials() []*entities.Material
	GetMaterial(id string) (*entities.Material, error)
	ListLetters() []entities.ArabicLetter
	GetLetter(index int) (entities.ArabicLetter, error)
}

// QuizStorage keeps one active quiz per chat.
type QuizStorage interface {
	Store(q *entities.ActiveQuiz)
	Get(chatID int64) (*entities.ActiveQuiz, bool)
	Touch(chatID int64)
	Delete(chatID int64)
	DeleteIdle(before time.Time) []int64
	Len() int
}
