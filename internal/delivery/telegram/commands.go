package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

// startHandler greets the user and shows the main menu.
func (h *Handler) startHandler(from *tgbotapi.User) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		firstName := ""
		if from != nil {
			firstName = from.FirstName
		}

		kb := buildMenuKeyboard(h.materialService.List(ctx))
		msg := newMessage(chatID, welcomeMarkdownV2(firstName))
		msg.ReplyMarkup = kb

		h.send(msg)
		return nil
	}
}

// menuHandler shows the main menu, editing msgID when it is set.
func (h *Handler) menuHandler(msgID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		materials := h.materialService.List(ctx)
		kb := buildMenuKeyboard(materials)

		_, err := h.show(chatID, msgID, renderMenu(materials), &kb)
		return err
	}
}

func (h *Handler) materialCommandHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if args == "" {
			h.send(newPlainMessage(chatID, msgUseMateri))
			return nil
		}

		m, err := h.materialService.Find(ctx, args)
		if err != nil {
			if errors.Is(err, repository.ErrMaterialNotFound) {
				h.send(newPlainMessage(chatID, msgMaterialNotFound))
				return nil
			}
			return err
		}

		_, err = h.showSection(ctx, chatID, 0, m.ID, sectionOverview)
		return err
	}
}

func (h *Handler) quizCommandHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if args == "" {
			h.send(newPlainMessage(chatID, msgUseQuiz))
			return nil
		}

		m, err := h.materialService.Find(ctx, args)
		if err != nil {
			if errors.Is(err, repository.ErrMaterialNotFound) {
				h.send(newPlainMessage(chatID, msgMaterialNotFound))
				return nil
			}
			return err
		}

		notice, err := h.startQuiz(ctx, chatID, 0, m.ID)
		if notice != "" {
			h.send(newPlainMessage(chatID, notice))
		}
		return err
	}
}

// lettersCommandHandler lists letters, narrowed by an optional search query.
func (h *Handler) lettersCommandHandler(query string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		f, err := h.letterService.ResolveFilter(service.NoFilter, query)
		if err != nil {
			return err
		}
		return h.showLetters(ctx, chatID, 0, f, service.NoFilter)
	}
}

func (h *Handler) abandonHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.quizService.Current(ctx, chatID)
		if errors.Is(err, service.ErrNoActiveQuiz) {
			h.send(newPlainMessage(chatID, msgNoActiveQuiz))
			return nil
		}
		if err != nil {
			return err
		}

		if err := h.quizService.Abandon(ctx, chatID); err != nil && !errors.Is(err, service.ErrNoActiveQuiz) {
			return err
		}

		h.clearKeyboard(chatID, state.MessageID)
		h.send(newPlainMessage(chatID, msgQuizAbandoned))
		return nil
	}
}

// essayTextHandler treats free text as the draft answer of the current essay.
// The quiz moves to a new message below the user's text. The old message keeps
// its keyboard until the new one is sent.
func (h *Handler) essayTextHandler(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.quizService.SetEssayText(ctx, chatID, text)
		if errors.Is(err, service.ErrNoActiveQuiz) || errors.Is(err, quiz.ErrInvalidState) {
			h.send(newPlainMessage(chatID, msgEssayOnlyInQuiz))
			return nil
		}
		if err != nil {
			return err
		}

		previous := state.MessageID
		if err := h.showQuiz(ctx, chatID, 0, state); err != nil {
			return err
		}
		h.clearKeyboard(chatID, previous)
		return nil
	}
}
