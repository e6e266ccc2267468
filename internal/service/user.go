package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
	logger     *zap.Logger
}

func NewUserService(repository UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repository: repository, logger: logger}
}

// EnsureUser registers the user or refreshes their chat and profile fields.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, username, firstName, languageCode string) error {
	user := entities.NewUser(userID, chatID)
	user.Username = username
	user.FirstName = firstName
	user.LanguageCode = languageCode

	created, err := s.repository.Save(ctx, user)
	if err != nil {
		return err
	}

	if created {
		s.logger.Info("new user registered",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
		)
	}

	return nil
}
