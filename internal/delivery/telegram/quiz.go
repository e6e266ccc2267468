package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

// startQuiz starts a quiz for the material and shows its first question.
// A non-empty notice is a user-facing reason the quiz could not start.
func (h *Handler) startQuiz(ctx context.Context, chatID int64, msgID int, materialID string) (string, error) {
	state, err := h.quizService.Start(ctx, chatID, materialID)
	switch {
	case errors.Is(err, repository.ErrMaterialNotFound):
		return msgMaterialNotFound, nil
	case errors.Is(err, service.ErrMaterialUnavailable):
		return msgUnavailable, nil
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		return msgNoQuiz, nil
	case err != nil:
		return "", err
	}

	return "", h.showQuiz(ctx, chatID, msgID, state)
}

// showQuiz draws the quiz state into msgID, or a new message when msgID is 0,
// and remembers that message as the quiz message.
func (h *Handler) showQuiz(ctx context.Context, chatID int64, msgID int, state *service.QuizState) error {
	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
	)

	switch {
	case state.MultipleChoice != nil:
		text = renderMultipleChoice(state.Title, state.MultipleChoice)
		kb = buildMultipleChoiceKeyboard(state.Token, state.MultipleChoice)
	case state.Essay != nil:
		text = renderEssay(state.Title, state.Essay)
		kb = buildEssayKeyboard(state.Token, state.Essay)
	case state.Result != nil:
		text = renderResultSummary(state.Result)
		kb = buildResultKeyboard(state.Token, state.MaterialID)
	default:
		return errors.New("quiz state without view")
	}

	shownID, err := h.show(chatID, msgID, text, &kb)
	if err != nil {
		return err
	}
	h.quizService.SetMessageID(ctx, chatID, state.Token, shownID)

	if state.Result != nil {
		for _, part := range splitBlocks(renderResultReview(state.Result), messageLimit) {
			h.send(newMessage(chatID, part))
		}
	}

	return nil
}
