package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

// telegramTextLimit is the maximum length of a Telegram text message.
const telegramTextLimit = 4096

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"tajwid", 10, "tajwid"},
		{"tajwid", 6, "tajwid"},
		{"tajwid", 4, "taj…"},
		{"بسملة", 3, "بس…"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateRunes(tt.in, tt.n))
	}
}

func TestBuildProgressBar(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{0, 10, "[░░░░░░░░░░]"},
		{5, 10, "[█████░░░░░]"},
		{10, 10, "[██████████]"},
		{12, 10, "[██████████]"},
		{1, 0, "[░░░░░░░░░░]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, buildProgressBar(tt.current, tt.total, progressBarSize))
	}
}

func TestRenderContentItem(t *testing.T) {
	tests := []struct {
		name string
		item entities.ContentItem
		want string
	}{
		{
			name: "labeled text",
			item: entities.ContentItem{Label: "Hukum", Text: "Fardhu kifayah"},
			want: "*Hukum:* Fardhu kifayah",
		},
		{
			name: "list",
			item: entities.ContentItem{Type: "list", Items: []string{"satu", "dua"}},
			want: "• satu\n• dua",
		},
		{
			name: "heading",
			item: entities.ContentItem{Type: "heading", Content: &entities.ContentBody{Text: "Makhraj"}},
			want: "*▸ Makhraj*",
		},
		{
			name: "arabic",
			item: entities.ContentItem{Type: "arabic", Content: &entities.ContentBody{Text: "ب"}},
			want: rlm + "*ب*",
		},
		{
			name: "unknown",
			item: entities.ContentItem{Title: "kosong"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderContentItem(tt.item))
		})
	}
}

func TestRenderContentItem_NumberedList(t *testing.T) {
	item := entities.ContentItem{
		Type: "numbered_list",
		Content: &entities.ContentBody{Entries: []entities.NumberedEntry{
			{Number: "1", Text: "Hams", Detail: "Nafas mengalir", Example: "فحثه"},
		}},
	}

	got := renderContentItem(item)
	assert.Contains(t, got, `*1\.*`)
	assert.Contains(t, got, "Nafas mengalir")
	assert.Contains(t, got, rlm+"فحثه")
}

func TestRenderSection_SkipsUnknownItems(t *testing.T) {
	m := &entities.Material{
		ID:        "mabadi",
		Title:     "Mabadi",
		Available: true,
		Sections: []entities.Section{{
			ID:    "s1",
			Title: "Definisi",
			Content: []entities.ContentItem{
				{Text: "Tajwid artinya memperbaiki"},
				{},
			},
		}},
	}

	got := renderSection(m, 0)
	assert.Contains(t, got, "Tajwid artinya memperbaiki")
	assert.NotContains(t, got, "\n\n\n")
}

func TestRenderMultipleChoice_Answered(t *testing.T) {
	v := &quiz.MultipleChoiceView{
		Question: quiz.MultipleChoiceQuestion{
			Question:           "Hukum belajar tajwid?",
			Options:            []string{"Sunnah", "Fardhu kifayah"},
			CorrectAnswerIndex: 1,
			Explanation:        "Hukum mempelajarinya fardhu kifayah",
		},
		Position:        1,
		Total:           2,
		Answered:        true,
		SelectedIndex:   0,
		ShowExplanation: true,
		Progress:        quiz.Progress{Position: 1, Total: 2},
	}

	got := renderMultipleChoice("Mabadi", v)
	assert.Contains(t, got, "Pilihan Ganda 1 dari 2")
	assert.Contains(t, got, "A\\. Sunnah ❌")
	assert.Contains(t, got, "B\\. Fardhu kifayah ✅")
	assert.Contains(t, got, bold("❌ Salah!"))
	assert.Contains(t, got, "Hukum mempelajarinya fardhu kifayah")
}

func TestRenderEssay_DraftStates(t *testing.T) {
	v := &quiz.EssayView{
		Question: quiz.EssayQuestion{Question: "Jelaskan", KeyPoints: []string{"makhraj"}},
		Position: 1,
		Total:    1,
		IsLast:   true,
		Progress: quiz.Progress{Position: 3, Total: 3},
	}

	assert.Contains(t, renderEssay("Mabadi", v), "kirim sebagai pesan")

	v.Text = "pendek"
	assert.Contains(t, renderEssay("Mabadi", v), italic(msgEssayTooShort))

	v.Text = "jawaban yang cukup panjang"
	v.CanAdvance = true
	got := renderEssay("Mabadi", v)
	assert.Contains(t, got, "jawaban yang cukup panjang")
	assert.NotContains(t, got, italic(msgEssayTooShort))
}

func TestRenderResult(t *testing.T) {
	r := &quiz.Result{
		Title:                 "Mabadi",
		Score:                 1.5,
		Total:                 3,
		Percentage:            50,
		Grade:                 quiz.GradeKeepLearning,
		MultipleChoiceCorrect: 1,
		MultipleChoiceTotal:   2,
		EssayScore:            0.5,
		EssayTotal:            1,
		MultipleChoice: []quiz.MultipleChoiceReview{
			{Question: quiz.MultipleChoiceQuestion{Question: "Q1"}, Answered: true, SelectedOption: "A", CorrectOption: "A", Correct: true},
			{Question: quiz.MultipleChoiceQuestion{Question: "Q2"}, Answered: true, SelectedOption: "A", CorrectOption: "B"},
		},
		Essays: []quiz.EssayReview{
			{Question: quiz.EssayQuestion{Question: "E1", SampleAnswer: "Contoh"}, ScorePercent: 50, Band: quiz.BandMedium},
		},
	}

	summary := renderResultSummary(r)
	assert.Contains(t, summary, "*50%*")
	assert.Contains(t, summary, bold(gradeText(quiz.GradeKeepLearning)))
	assert.Contains(t, summary, "Anda menjawab 1 dari 2")

	blocks := renderResultReview(r)
	require.Len(t, blocks, 5)
	assert.Contains(t, blocks[2], "Jawaban benar: B")
	assert.NotContains(t, blocks[1], "Jawaban benar")
	assert.Contains(t, blocks[4], "🟡 Skor: 50%")
	assert.Contains(t, blocks[4], noEssayAnswer)
}

func TestRenderLetters(t *testing.T) {
	letters := []service.IndexedLetter{
		{Index: 1, ArabicLetter: entities.ArabicLetter{Letter: "ب", Name: "Ba", Makhraj: "Kedua Syafatain"}},
	}
	f := entities.LetterFilter{Makhraj: "Kedua Syafatain"}

	got := renderLetters(letters, f, 29)
	assert.Contains(t, got, "Menampilkan 1 dari 29 huruf")
	assert.Contains(t, got, "Filter aktif \\(1\\):")
	assert.Contains(t, got, rlm+"*ب*")

	empty := renderLetters(nil, f, 29)
	assert.Contains(t, empty, md(msgNoLettersFound))
}

func TestSplitBlocks(t *testing.T) {
	blocks := []string{strings.Repeat("a", 6), strings.Repeat("b", 6), strings.Repeat("c", 20)}

	got := splitBlocks(blocks, 15)
	assert.Equal(t, []string{"aaaaaa\n\nbbbbbb", strings.Repeat("c", 20)}, got)
	assert.Empty(t, splitBlocks(nil, 15))
}

func TestRenderEssay_LongAnswerFitsOneMessage(t *testing.T) {
	v := &quiz.EssayView{
		Question:   quiz.EssayQuestion{Question: "Jelaskan pengertian tajwid", KeyPoints: []string{"makhraj", "sifat"}},
		Position:   1,
		Total:      1,
		Text:       strings.Repeat("tajwid ", 585),
		CanAdvance: true,
		IsLast:     true,
		Progress:   quiz.Progress{Position: 3, Total: 3},
	}

	got := renderEssay("Mabadi", v)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), telegramTextLimit)
	assert.Contains(t, got, "…")
}

func TestRenderResultReview_LongAnswerFitsMessages(t *testing.T) {
	r := &quiz.Result{
		Title: "Mabadi",
		MultipleChoice: []quiz.MultipleChoiceReview{
			{Question: quiz.MultipleChoiceQuestion{Question: "Q1"}, Answered: true, SelectedOption: "A", CorrectOption: "A", Correct: true},
		},
		Essays: []quiz.EssayReview{{
			Question: quiz.EssayQuestion{
				Question:     "Jelaskan pengertian tajwid",
				SampleAnswer: "Mengeluarkan setiap huruf dari makhrajnya",
				KeyPoints:    []string{"makhraj", "sifat"},
			},
			Answer:       strings.Repeat("tajwid ", 585),
			ScorePercent: 100,
			Band:         quiz.BandHigh,
		}},
	}

	parts := splitBlocks(renderResultReview(r), messageLimit)
	require.NotEmpty(t, parts)
	for i, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), telegramTextLimit, "part %d", i)
	}
	assert.Contains(t, strings.Join(parts, ""), "…")
}
