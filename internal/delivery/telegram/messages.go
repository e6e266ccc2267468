// messages.go contains message templates and MarkdownV2 helpers for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error and notice messages.
const (
	msgInternalError       = "Terjadi kesalahan. Silakan coba lagi nanti."
	msgUnknownCommand      = "Perintah tidak dikenal. Ketik /help untuk melihat daftar perintah."
	msgMaterialNotFound    = "Materi tidak ditemukan. Ketik /menu untuk melihat daftar materi."
	msgUseMateri           = "Gunakan: /materi <nama>, contoh: /materi mabadi"
	msgUseQuiz             = "Gunakan: /quiz <nama>, contoh: /quiz mabadi"
	msgNoQuiz              = "Materi ini belum memiliki kuis."
	msgUnavailable         = "Fitur ini sedang dalam pengembangan. Segera hadir untuk membantu pembelajaran tajwid Anda."
	msgNoActiveQuiz        = "Tidak ada kuis yang sedang berjalan."
	msgQuizAbandoned       = "Kuis dihentikan. Ketik /menu untuk kembali ke menu utama."
	msgStaleQuiz           = "Kuis ini sudah tidak aktif."
	msgAlreadyAnswered     = "Jawaban sudah dipilih."
	msgEssayTooShort       = "Minimal 10 karakter untuk melanjutkan"
	msgEssayOnlyInQuiz     = "Ketik /menu untuk membuka materi atau /huruf untuk mencari huruf."
	msgLetterNotFound      = "Huruf tidak ditemukan."
	msgNoLettersFound      = "Tidak ada huruf yang cocok dengan filter."
	msgInvalidLetterFilter = "Filter tidak valid."
)

// Button labels.
const (
	btnMenu         = "🏠 Menu Utama"
	btnBackToMenu   = "← Kembali ke Menu Utama"
	btnBackMaterial = "← Kembali ke Materi"
	btnStartQuiz    = "📝 Mulai Kuis"
	btnPrev         = "◀️ Sebelumnya"
	btnNextSection  = "Selanjutnya ▶️"
	btnNextQuestion = "Selanjutnya ▶️"
	btnToEssay      = "Lanjut ke Esai ✍️"
	btnResults      = "Lihat Hasil 🏁"
	btnScore        = "Lihat Nilai 🏁"
	btnRestart      = "🔄 Ulangi Kuis"
	btnLetters      = "🔤 Huruf Hijaiyah"
	btnResetFilter  = "✖️ Hapus Filter"
	btnBackLetters  = "← Kembali ke Daftar Huruf"
	btnMakhraj      = "Makhraj"
	btnSifat        = "Sifat"
	btnSifatExtra   = "Sifat Tambahan"
	btnAll          = "Semua"
)

const helpText = `Perintah yang tersedia:

/menu - menu utama materi
/materi <nama> - buka materi, contoh: /materi mabadi
/quiz <nama> - mulai kuis materi
/huruf [kata] - daftar huruf hijaiyah, bisa dicari dengan nama atau huruf
/batal - hentikan kuis yang sedang berjalan
/help - bantuan

Saat kuis esai, kirim jawaban Anda sebagai pesan biasa.`

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMarkdownV2 builds the welcome message.
func welcomeMarkdownV2(firstName string) string {
	var sb strings.Builder

	sb.WriteString(md("السلام عليكم ورحمة الله وبركاته"))
	sb.WriteString("\n\n")

	if firstName != "" {
		sb.WriteString(md("Ahlan wa sahlan, "))
		sb.WriteString(bold(firstName))
		sb.WriteString(md("!"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(bold("Tahsin Quran Bot"))
	sb.WriteString(md(" membantu Anda mempelajari "))
	sb.WriteString(bold("ilmu tajwid"))
	sb.WriteString(md(" langkah demi langkah."))
	sb.WriteString("\n\n")

	sb.WriteString(md("📖 Baca materi "))
	sb.WriteString(bold("Mabadi"))
	sb.WriteString(md(", "))
	sb.WriteString(bold("Makhraj"))
	sb.WriteString(md(" dan "))
	sb.WriteString(bold("Sifat Huruf"))
	sb.WriteString(md("."))
	sb.WriteString("\n")
	sb.WriteString(md("📝 Uji pemahaman dengan kuis pilihan ganda dan esai."))
	sb.WriteString("\n")
	sb.WriteString(md("🔤 Cari huruf hijaiyah berdasarkan makhraj dan sifatnya."))
	sb.WriteString("\n\n")

	sb.WriteString(md("Pilih materi di bawah ini atau ketik /help untuk bantuan."))

	return sb.String()
}

// splitBlocks packs MarkdownV2 blocks into messages no longer than limit.
// Blocks are never split, so a single oversized block becomes its own message.
func splitBlocks(blocks []string, limit int) []string {
	var (
		out     []string
		current strings.Builder
	)

	for _, b := range blocks {
		if current.Len() > 0 && current.Len()+2+len(b) > limit {
			out = append(out, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(b)
	}

	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}
