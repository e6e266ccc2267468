package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
)

const (
	rlm             = "\u200F"
	progressBarSize = 10
	messageLimit    = 4000
	noEssayAnswer   = "Tidak dijawab"

	// maxEchoedAnswer caps how much of an essay answer is shown back to the user.
	maxEchoedAnswer = 3000
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// truncateRunes cuts s to at most n runes, marking the cut with an ellipsis.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func optionLabel(i int) string {
	if i < len(optionLabels) {
		return optionLabels[i]
	}
	return strconv.Itoa(i + 1)
}

// renderMenu builds the main menu text.
func renderMenu(materials []*entities.Material) string {
	var sb strings.Builder
	sb.WriteString(bold("📚 Belajar Tajwid"))
	sb.WriteString("\n")
	sb.WriteString(md("Pilih materi yang ingin dipelajari:"))
	sb.WriteString("\n")

	for _, m := range materials {
		sb.WriteString("\n")
		sb.WriteString(bold(m.Title))
		if m.Description != "" {
			sb.WriteString(md(" - " + m.Description))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(bold("Huruf Hijaiyah"))
	sb.WriteString(md(" - Rangkuman dalam 29 huruf hijaiyah"))

	return sb.String()
}

// renderMaterial builds the overview of a material: description and section list.
func renderMaterial(m *entities.Material) string {
	if !m.Available {
		return renderUnavailable(m)
	}

	var sb strings.Builder
	sb.WriteString(bold("📖 " + m.Title))
	if m.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(italic(m.Description))
	}

	if len(m.Sections) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(md("Daftar isi:"))
		for i, s := range m.Sections {
			sb.WriteString("\n")
			sb.WriteString(md(fmt.Sprintf("%d. %s", i+1, s.Title)))
		}
	}

	if m.HasQuiz() {
		sb.WriteString("\n\n")
		sb.WriteString(md(fmt.Sprintf("📝 Kuis: %d soal pilihan ganda", len(m.Quiz))))
		if n := len(m.EssayQuestions); n > 0 {
			sb.WriteString(md(fmt.Sprintf(" dan %d soal esai", n)))
		}
	}

	return sb.String()
}

func renderUnavailable(m *entities.Material) string {
	return fmt.Sprintf("%s\n\n%s", bold("🚧 "+m.Title), md(msgUnavailable))
}

// renderSection builds one section page of a material.
func renderSection(m *entities.Material, index int) string {
	s := m.Sections[index]

	var sb strings.Builder
	sb.WriteString(italic(fmt.Sprintf("%s · %d/%d", m.Title, index+1, len(m.Sections))))
	sb.WriteString("\n")
	sb.WriteString(bold(fmt.Sprintf("%d. %s", index+1, s.Title)))

	for _, item := range s.Content {
		block := renderContentItem(item)
		if block == "" {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(block)
	}

	return sb.String()
}

// renderContentItem renders a single content item, or "" for unknown shapes.
func renderContentItem(item entities.ContentItem) string {
	switch item.Kind() {
	case entities.KindGrid:
		return md(strings.Join(item.Items, "  ·  "))

	case entities.KindList:
		lines := make([]string, 0, len(item.Items))
		for _, it := range item.Items {
			lines = append(lines, md("• "+it))
		}
		return strings.Join(lines, "\n")

	case entities.KindDetails:
		blocks := make([]string, 0, len(item.Details))
		if item.Title != "" {
			blocks = append(blocks, bold(item.Title))
		}
		for _, d := range item.Details {
			blocks = append(blocks, md(styleIcon(d.Style)+" ")+bold(d.Type)+"\n"+md(d.Description))
		}
		return strings.Join(blocks, "\n\n")

	case entities.KindTitledItems:
		lines := []string{md(styleIcon(item.Style)+" ") + bold(item.Title)}
		for _, it := range item.Items {
			lines = append(lines, md("• "+it))
		}
		return strings.Join(lines, "\n")

	case entities.KindLabeledText:
		return bold(item.Label+":") + " " + md(item.Text)

	case entities.KindText:
		return md(itemText(item))

	case entities.KindArabic, entities.KindArabicLetters:
		return rlm + bold(itemText(item))

	case entities.KindArabicExample:
		return md("Contoh: ") + rlm + md(itemText(item))

	case entities.KindArabicPhrase:
		return rlm + italic(itemText(item))

	case entities.KindHeading:
		return bold("▸ " + itemText(item))

	case entities.KindNumberedList:
		return renderNumberedList(item.Content.Entries)

	default:
		return ""
	}
}

func itemText(item entities.ContentItem) string {
	if item.Content != nil && item.Content.Text != "" {
		return item.Content.Text
	}
	return item.Text
}

func renderNumberedList(entries []entities.NumberedEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := bold(e.Number+".") + " " + md(e.Text)
		if e.Detail != "" {
			line += "\n    " + md(e.Detail)
		}
		if e.Example != "" {
			line += "\n    " + md("Contoh: ") + rlm + md(e.Example)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func styleIcon(s entities.Style) string {
	switch s {
	case entities.StyleError:
		return "❌"
	case entities.StyleWarning:
		return "⚠️"
	case entities.StyleInfo:
		return "ℹ️"
	case entities.StyleSuccess:
		return "✅"
	default:
		return "▪️"
	}
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	filled = min(max(filled, 0), length)

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// renderMultipleChoice builds the text of the current multiple-choice question.
func renderMultipleChoice(title string, v *quiz.MultipleChoiceView) string {
	var sb strings.Builder

	sb.WriteString(bold("📝 Kuis: " + title))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("Pilihan Ganda %d dari %d", v.Position, v.Total)))
	if v.EssayCount > 0 {
		sb.WriteString(md(fmt.Sprintf(" · Esai: %d soal", v.EssayCount)))
	}
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("%s Skor: %d/%d",
		buildProgressBar(v.Progress.Position, v.Progress.Total, progressBarSize),
		v.CorrectCount, v.Total,
	)))
	sb.WriteString("\n\n")
	sb.WriteString(bold(v.Question.Question))
	sb.WriteString("\n")

	for i, opt := range v.Question.Options {
		mark := ""
		if v.Answered {
			switch {
			case i == v.Question.CorrectAnswerIndex:
				mark = " ✅"
			case i == v.SelectedIndex:
				mark = " ❌"
			}
		}
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%s. %s%s", optionLabel(i), opt, mark)))
	}

	if v.ShowExplanation {
		sb.WriteString("\n\n")
		if v.Correct {
			sb.WriteString(bold("✅ Benar!"))
		} else {
			sb.WriteString(bold("❌ Salah!"))
		}
		if v.Question.Explanation != "" {
			sb.WriteString("\n")
			sb.WriteString(md(v.Question.Explanation))
		}
	}

	return sb.String()
}

// renderEssay builds the text of the current essay question.
func renderEssay(title string, v *quiz.EssayView) string {
	var sb strings.Builder

	sb.WriteString(bold("✍️ Kuis Esai: " + title))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("Esai %d dari %d · Pilihan Ganda: %d/%d ✓", v.Position, v.Total, v.CorrectCount, v.MCTotal)))
	sb.WriteString("\n")
	sb.WriteString(md(buildProgressBar(v.Progress.Position, v.Progress.Total, progressBarSize)))
	sb.WriteString("\n\n")
	sb.WriteString(bold(v.Question.Question))
	sb.WriteString("\n\n")

	if len(v.Question.KeyPoints) > 0 {
		sb.WriteString(md("💡 Poin-poin yang harus dibahas:"))
		for _, p := range v.Question.KeyPoints {
			sb.WriteString("\n")
			sb.WriteString(md("• " + p))
		}
		sb.WriteString("\n\n")
	}

	if strings.TrimSpace(v.Text) == "" {
		sb.WriteString(italic("Tuliskan jawaban Anda dengan lengkap dan jelas, lalu kirim sebagai pesan."))
		return sb.String()
	}

	sb.WriteString(md("Jawaban Anda:"))
	sb.WriteString("\n")
	sb.WriteString(md(truncateRunes(v.Text, maxEchoedAnswer)))
	if !v.CanAdvance {
		sb.WriteString("\n\n")
		sb.WriteString(italic(msgEssayTooShort))
	} else {
		sb.WriteString("\n\n")
		sb.WriteString(italic("Kirim pesan baru untuk mengganti jawaban."))
	}

	return sb.String()
}

func gradeText(g quiz.Grade) string {
	switch g {
	case quiz.GradeExcellent:
		return "🌟 Excellent!"
	case quiz.GradeGood:
		return "👍 Good Job!"
	default:
		return "📚 Keep Learning!"
	}
}

func bandIcon(b quiz.Band) string {
	switch b {
	case quiz.BandHigh:
		return "🟢"
	case quiz.BandMedium:
		return "🟡"
	default:
		return "🔴"
	}
}

// renderResultSummary builds the headline of a finished quiz.
func renderResultSummary(r *quiz.Result) string {
	var sb strings.Builder

	sb.WriteString(bold("🏁 Hasil Kuis: " + r.Title))
	sb.WriteString("\n\n")
	sb.WriteString(bold(fmt.Sprintf("%d%%", r.Percentage)))
	sb.WriteString(" ")
	sb.WriteString(md(buildProgressBar(r.Percentage, 100, progressBarSize)))
	sb.WriteString("\n")
	sb.WriteString(bold(gradeText(r.Grade)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Anda menjawab %d dari %d pertanyaan pilihan ganda dengan benar",
		r.MultipleChoiceCorrect, r.MultipleChoiceTotal)))

	if r.EssayTotal > 0 {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("+ %.1f dari %d poin esai (Total: %.1f dari %d)",
			r.EssayScore, r.EssayTotal, r.Score, r.Total)))
	}

	return sb.String()
}

// renderResultReview builds the per-question review as message blocks.
func renderResultReview(r *quiz.Result) []string {
	blocks := []string{bold("Review Jawaban Pilihan Ganda")}

	for i, rv := range r.MultipleChoice {
		icon := "❌"
		if rv.Correct {
			icon = "✅"
		}

		var sb strings.Builder
		sb.WriteString(md(fmt.Sprintf("%s %d. ", icon, i+1)))
		sb.WriteString(bold(rv.Question.Question))
		sb.WriteString("\n")
		answer := noEssayAnswer
		if rv.Answered {
			answer = rv.SelectedOption
		}
		sb.WriteString(md("Jawaban Anda: " + answer))
		if !rv.Correct {
			sb.WriteString("\n")
			sb.WriteString(md("Jawaban benar: " + rv.CorrectOption))
		}
		if rv.Question.Explanation != "" {
			sb.WriteString("\n")
			sb.WriteString(italic(rv.Question.Explanation))
		}
		blocks = append(blocks, sb.String())
	}

	if len(r.Essays) == 0 {
		return blocks
	}

	blocks = append(blocks, bold("Review Jawaban Esai"))
	for i, rv := range r.Essays {
		var sb strings.Builder
		sb.WriteString(md(fmt.Sprintf("%d. ", i+1)))
		sb.WriteString(bold(rv.Question.Question))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%s Skor: %d%%", bandIcon(rv.Band), rv.ScorePercent)))
		sb.WriteString("\n\n")

		answer := rv.Answer
		if strings.TrimSpace(answer) == "" {
			answer = noEssayAnswer
		}
		sb.WriteString(bold("Jawaban Anda:"))
		sb.WriteString("\n")
		sb.WriteString(md(truncateRunes(answer, maxEchoedAnswer)))

		if rv.Question.SampleAnswer != "" {
			sb.WriteString("\n\n")
			sb.WriteString(bold("Contoh Jawaban:"))
			sb.WriteString("\n")
			sb.WriteString(md(rv.Question.SampleAnswer))
		}

		if len(rv.Question.KeyPoints) > 0 {
			sb.WriteString("\n\n")
			sb.WriteString(bold("Poin-poin Penting:"))
			for _, p := range rv.Question.KeyPoints {
				sb.WriteString("\n")
				sb.WriteString(md("• " + p))
			}
		}
		blocks = append(blocks, sb.String())
	}

	return blocks
}

// renderLetters builds the letter list page.
func renderLetters(letters []service.IndexedLetter, f entities.LetterFilter, total int) string {
	var sb strings.Builder

	sb.WriteString(bold("🔤 Huruf Hijaiyah"))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("Menampilkan %d dari %d huruf", len(letters), total)))

	if f.Query != "" {
		sb.WriteString("\n")
		sb.WriteString(md("Pencarian: " + f.Query))
	}
	if n := f.ActiveCount(); n > 0 {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("Filter aktif (%d):", n)))
		for _, v := range []string{f.Makhraj, f.Sifat, f.SifatTambahan} {
			if v != "" {
				sb.WriteString(" ")
				sb.WriteString(bold(v))
			}
		}
	}

	if len(letters) == 0 {
		sb.WriteString("\n\n")
		sb.WriteString(md(msgNoLettersFound))
		return sb.String()
	}

	sb.WriteString("\n\n")
	for _, l := range letters {
		sb.WriteString(rlm)
		sb.WriteString(bold(l.Letter))
		sb.WriteString(md(fmt.Sprintf("  %s · %s", l.Name, l.Makhraj)))
		sb.WriteString("\n")
	}
	sb.WriteString(italic("Pilih huruf untuk melihat detailnya."))

	return sb.String()
}

// renderLetter builds the letter detail.
func renderLetter(l entities.ArabicLetter) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("Detail Huruf %s (%s)", l.Letter, l.Name)))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Makhraj"))
	sb.WriteString("\n")
	sb.WriteString(md(l.Makhraj))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Sifat Huruf"))

	rows := []struct{ label, value string }{
		{"Nafas", l.Nafas},
		{"Suara", l.Suara},
		{"Lidah", l.Lidah},
		{"Tebal", l.Tebal},
		{"Pengucapan", l.Pengucapan},
	}
	for _, r := range rows {
		sb.WriteString("\n")
		sb.WriteString(md(r.label + ": "))
		sb.WriteString(bold(r.value))
	}

	if l.SifatImtihan != "" {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Sifat Tambahan"))
		sb.WriteString("\n")
		sb.WriteString(md(l.SifatImtihan))
	}

	return sb.String()
}

// renderLetterOptions builds the header of the filter option picker.
func renderLetterOptions(kind string) string {
	switch kind {
	case optionMakhraj:
		return bold("Filter Makhraj") + "\n" + md("Pilih tempat keluarnya huruf:")
	case optionSifat:
		return bold("Filter Sifat") + "\n" + md("Pilih sifat huruf:")
	default:
		return bold("Filter Sifat Tambahan") + "\n" + md("Pilih sifat tambahan:")
	}
}
