package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

// callbackFunc handles one callback action. A non-empty alert is shown to
// the user instead of a silent acknowledgement.
type callbackFunc func(ctx context.Context, chatID int64, msgID int, cd callbackData) (alert string, err error)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	cd := decodeCallback(cb.Data)

	var handle callbackFunc
	switch cd.Action {
	case actionMenu:
		handle = h.menuCallback
	case actionMaterial:
		handle = h.materialCallback
	case actionQuiz:
		handle = h.quizCallback
	case actionLetters:
		handle = h.lettersCallback
	case actionLetter:
		handle = h.letterCallback
	default:
		h.logger.Warn("unknown callback action", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	alert, err := handle(ctx, chatID, cb.Message.MessageID, cd)
	switch {
	case errors.Is(err, errBadCallback):
		h.logger.Warn("malformed callback", zap.String("data", cb.Data))
	case err != nil:
		h.logger.Error("callback error",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		alert = msgInternalError
	}

	h.answerCallback(cb.ID, alert)
}

func (h *Handler) menuCallback(ctx context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	return "", h.menuHandler(msgID)(ctx, chatID)
}

// materialCallback handles material:<id> and material:<id>:<section>.
func (h *Handler) materialCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	id := cd.param(0)
	if id == "" {
		return "", errBadCallback
	}

	section := sectionOverview
	if len(cd.Params) > 1 {
		n, err := cd.intParam(1)
		if err != nil {
			return "", err
		}
		section = n
	}

	_, err := h.showSection(ctx, chatID, msgID, id, section)
	if errors.Is(err, repository.ErrMaterialNotFound) {
		return msgMaterialNotFound, nil
	}
	return "", err
}

func (h *Handler) quizCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	var (
		state *service.QuizState
		err   error
	)

	switch cd.param(0) {
	case quizStart:
		id := cd.param(1)
		if id == "" {
			return "", errBadCallback
		}
		return h.startQuiz(ctx, chatID, msgID, id)

	case quizAnswer:
		pos, perr := cd.intParam(2)
		idx, ierr := cd.intParam(3)
		if perr != nil || ierr != nil {
			return "", errBadCallback
		}
		state, err = h.quizService.Answer(ctx, chatID, cd.param(1), pos, idx)

	case quizNext:
		pos, perr := cd.intParam(2)
		if perr != nil {
			return "", errBadCallback
		}
		state, err = h.quizService.Next(ctx, chatID, cd.param(1), pos)

	case quizRestart:
		state, err = h.quizService.Restart(ctx, chatID, cd.param(1))

	default:
		return "", errBadCallback
	}

	if err != nil {
		return h.quizAlert(ctx, chatID, err)
	}
	return "", h.showQuiz(ctx, chatID, msgID, state)
}

// quizAlert maps a rejected quiz action to the alert shown to the user.
func (h *Handler) quizAlert(ctx context.Context, chatID int64, err error) (string, error) {
	switch {
	case errors.Is(err, service.ErrNoActiveQuiz), errors.Is(err, service.ErrStaleQuiz):
		return msgStaleQuiz, nil
	case errors.Is(err, quiz.ErrInvalidInput):
		return "", errBadCallback
	case errors.Is(err, quiz.ErrInvalidState):
		state, cerr := h.quizService.Current(ctx, chatID)
		if cerr == nil && state.Essay != nil {
			return msgEssayTooShort, nil
		}
		return msgAlreadyAnswered, nil
	default:
		return "", err
	}
}

// lettersCallback handles letters:f:<m>:<s>:<t> and letters:o:<kind>:<m>:<s>:<t>.
func (h *Handler) lettersCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	switch cd.param(0) {
	case lettersFilter:
		idx, err := cd.filterParams(1)
		if err != nil {
			return "", err
		}
		f, err := h.letterService.ResolveFilter(idx, "")
		if errors.Is(err, service.ErrInvalidFilter) {
			return msgInvalidLetterFilter, nil
		}
		if err != nil {
			return "", err
		}
		return "", h.showLetters(ctx, chatID, msgID, f, idx)

	case lettersOptions:
		kind := cd.param(1)
		if kind != optionMakhraj && kind != optionSifat && kind != optionSifatTambahan {
			return "", errBadCallback
		}
		idx, err := cd.filterParams(2)
		if err != nil {
			return "", err
		}
		return "", h.showLetterOptions(ctx, chatID, msgID, kind, idx)

	default:
		return "", errBadCallback
	}
}

// letterCallback handles letter:<index>:<m>:<s>:<t>.
func (h *Handler) letterCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	index, err := cd.intParam(0)
	if err != nil {
		return "", err
	}
	idx, err := cd.filterParams(1)
	if err != nil {
		return "", err
	}

	err = h.showLetter(ctx, chatID, msgID, index, idx)
	if errors.Is(err, repository.ErrLetterNotFound) {
		return msgLetterNotFound, nil
	}
	return "", err
}
