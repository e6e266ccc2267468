package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const sectionOverview = -1

// showSection shows a section of the material, or its overview for
// sectionOverview.
func (h *Handler) showSection(ctx context.Context, chatID int64, msgID int, id string, section int) (int, error) {
	m, err := h.materialService.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
	)

	switch {
	case !m.Available:
		text = renderUnavailable(m)
		kb = buildMaterialKeyboard(m)
	case section == sectionOverview:
		text = renderMaterial(m)
		kb = buildMaterialKeyboard(m)
	case section < 0 || section >= len(m.Sections):
		return 0, errBadCallback
	default:
		text = renderSection(m, section)
		kb = buildSectionKeyboard(m, section)
	}

	return h.show(chatID, msgID, text, &kb)
}
