package telegram

import (
	"context"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

func (h *Handler) showLetters(ctx context.Context, chatID int64, msgID int, f entities.LetterFilter, idx service.FilterIndexes) error {
	letters := h.letterService.Filter(ctx, f)
	total := len(h.letterService.Filter(ctx, entities.LetterFilter{}))

	kb := buildLettersKeyboard(letters, idx, h.letterService.ActiveFilterCount(f))
	_, err := h.show(chatID, msgID, renderLetters(letters, f, total), &kb)
	return err
}

func (h *Handler) showLetterOptions(ctx context.Context, chatID int64, msgID int, kind string, idx service.FilterIndexes) error {
	options := optionsFor(kind, h.letterService.Options(ctx))

	kb := buildLetterOptionsKeyboard(kind, options, idx)
	_, err := h.show(chatID, msgID, renderLetterOptions(kind), &kb)
	return err
}

func (h *Handler) showLetter(ctx context.Context, chatID int64, msgID int, index int, idx service.FilterIndexes) error {
	l, err := h.letterService.Get(ctx, index)
	if err != nil {
		return err
	}

	kb := buildLetterKeyboard(idx)
	_, err = h.show(chatID, msgID, renderLetter(l), &kb)
	return err
}
