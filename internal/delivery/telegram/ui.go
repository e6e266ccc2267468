package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

const (
	sectionsPerRow = 2
	lettersPerRow  = 4
	optionsPerRow  = 2
)

// chunkButtons lays buttons out in rows of n.
func chunkButtons(buttons []tgbotapi.InlineKeyboardButton, n int) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for start := 0; start < len(buttons); start += n {
		end := min(start+n, len(buttons))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons[start:end]...))
	}
	return rows
}

func menuRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnMenu, buildMenuCallback()),
	)
}

// buildMenuKeyboard builds the main menu keyboard.
func buildMenuKeyboard(materials []*entities.Material) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(materials)+1)
	for _, m := range materials {
		label := "📖 " + m.Title
		if !m.Available {
			label = "🚧 " + m.Title
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildMaterialCallback(m.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnLetters, buildLettersCallback(service.NoFilter)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildMaterialKeyboard builds the material overview keyboard.
func buildMaterialKeyboard(m *entities.Material) tgbotapi.InlineKeyboardMarkup {
	if !m.Available {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(btnBackToMenu, buildMenuCallback()),
			),
		)
	}

	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(m.Sections))
	for i, s := range m.Sections {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(i+1)+". "+s.Title, buildSectionCallback(m.ID, i),
		))
	}

	rows := chunkButtons(buttons, sectionsPerRow)
	if m.HasQuiz() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnStartQuiz, buildQuizStartCallback(m.ID)),
		))
	}
	rows = append(rows, menuRow())

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildSectionKeyboard builds navigation between sections of a material.
func buildSectionKeyboard(m *entities.Material, index int) tgbotapi.InlineKeyboardMarkup {
	var nav []tgbotapi.InlineKeyboardButton
	if index > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(btnPrev, buildSectionCallback(m.ID, index-1)))
	}
	if index < len(m.Sections)-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(btnNextSection, buildSectionCallback(m.ID, index+1)))
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	if index == len(m.Sections)-1 && m.HasQuiz() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnStartQuiz, buildQuizStartCallback(m.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnBackMaterial, buildMaterialCallback(m.ID)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildMultipleChoiceKeyboard shows answer options, or the next step once answered.
func buildMultipleChoiceKeyboard(token string, v *quiz.MultipleChoiceView) tgbotapi.InlineKeyboardMarkup {
	pos := v.Progress.Position

	if v.Answered {
		label := btnNextQuestion
		switch v.Next {
		case quiz.NextEssay:
			label = btnToEssay
		case quiz.NextResults:
			label = btnResults
		}
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback(token, pos)),
			),
		)
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Question.Options))
	for i, opt := range v.Question.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(optionLabel(i)+". "+opt, buildQuizAnswerCallback(token, pos, i)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildEssayKeyboard builds the essay step button.
func buildEssayKeyboard(token string, v *quiz.EssayView) tgbotapi.InlineKeyboardMarkup {
	label := btnNextQuestion
	if v.IsLast {
		label = btnScore
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback(token, v.Progress.Position)),
		),
	)
}

// buildResultKeyboard builds keyboard for quiz results screen.
func buildResultKeyboard(token, materialID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnRestart, buildQuizRestartCallback(token)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnBackMaterial, buildMaterialCallback(materialID)),
		),
		menuRow(),
	)
}

// buildLettersKeyboard builds the letter grid with filter controls.
func buildLettersKeyboard(letters []service.IndexedLetter, idx service.FilterIndexes, activeFilters int) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(letters))
	for _, l := range letters {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			l.Letter+" "+l.Name, buildLetterCallback(l.Index, idx),
		))
	}

	rows := chunkButtons(buttons, lettersPerRow)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(filterLabel(btnMakhraj, idx.Makhraj), buildLetterOptionsCallback(optionMakhraj, idx)),
		tgbotapi.NewInlineKeyboardButtonData(filterLabel(btnSifat, idx.Sifat), buildLetterOptionsCallback(optionSifat, idx)),
		tgbotapi.NewInlineKeyboardButtonData(filterLabel(btnSifatExtra, idx.SifatTambahan), buildLetterOptionsCallback(optionSifatTambahan, idx)),
	))
	if activeFilters > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnResetFilter+" ("+strconv.Itoa(activeFilters)+")", buildLettersCallback(service.NoFilter)),
		))
	}
	rows = append(rows, menuRow())

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func filterLabel(label string, selected int) string {
	if selected != service.NoOption {
		return "✓ " + label
	}
	return label
}

// buildLetterOptionsKeyboard lists the options of one filter kind.
func buildLetterOptionsKeyboard(kind string, options []string, idx service.FilterIndexes) tgbotapi.InlineKeyboardMarkup {
	current := selectedOption(kind, idx)

	all := btnAll
	if current == service.NoOption {
		all = "✓ " + all
	}
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(all, buildLettersCallback(withOption(kind, idx, service.NoOption))),
		),
	}

	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(options))
	for i, opt := range options {
		label := opt
		if i == current {
			label = "✓ " + label
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(label, buildLettersCallback(withOption(kind, idx, i))))
	}
	rows = append(rows, chunkButtons(buttons, optionsPerRow)...)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnBackLetters, buildLettersCallback(idx)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildLetterKeyboard returns from a letter detail to the filtered list.
func buildLetterKeyboard(idx service.FilterIndexes) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnBackLetters, buildLettersCallback(idx)),
		),
	)
}

func selectedOption(kind string, idx service.FilterIndexes) int {
	switch kind {
	case optionMakhraj:
		return idx.Makhraj
	case optionSifat:
		return idx.Sifat
	default:
		return idx.SifatTambahan
	}
}

func withOption(kind string, idx service.FilterIndexes, value int) service.FilterIndexes {
	switch kind {
	case optionMakhraj:
		idx.Makhraj = value
	case optionSifat:
		idx.Sifat = value
	default:
		idx.SifatTambahan = value
	}
	return idx
}

func optionsFor(kind string, opts service.LetterFilterOptions) []string {
	switch kind {
	case optionMakhraj:
		return opts.Makhraj
	case optionSifat:
		return opts.Sifat
	default:
		return opts.SifatTambahan
	}
}
