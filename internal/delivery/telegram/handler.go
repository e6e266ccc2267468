package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	pollTimeout     int
	userService     UserService
	materialService MaterialService
	quizService     QuizService
	letterService   LetterService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	pollTimeout int,
	userService UserService,
	materialService MaterialService,
	quizService QuizService,
	letterService LetterService,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		pollTimeout:     pollTimeout,
		userService:     userService,
		materialService: materialService,
		quizService:     quizService,
		letterService:   letterService,
	}
}

// Commands returns the command list shown in the Telegram client.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Mulai bot"},
		{Command: "menu", Description: "Menu utama materi"},
		{Command: "materi", Description: "Buka materi (contoh: /materi mabadi)"},
		{Command: "quiz", Description: "Mulai kuis (contoh: /quiz mabadi)"},
		{Command: "huruf", Description: "Daftar huruf hijaiyah"},
		{Command: "batal", Description: "Hentikan kuis"},
		{Command: "help", Description: "Bantuan"},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.pollTimeout

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	if from := update.Message.From; from != nil {
		err := h.userService.EnsureUser(ctx, from.ID, chatID, from.UserName, from.FirstName, from.LanguageCode)
		if err != nil {
			h.logger.Error("failed to ensure user",
				zap.Int64("user_id", from.ID),
				zap.Error(err),
			)
		}
	}

	if update.Message.IsCommand() {
		args := strings.TrimSpace(update.Message.CommandArguments())

		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling("start", h.startHandler(update.Message.From))(ctx, chatID)
		case "menu":
			_ = h.withErrorHandling("menu", h.menuHandler(0))(ctx, chatID)
		case "materi":
			_ = h.withErrorHandling("materi", h.materialCommandHandler(args))(ctx, chatID)
		case "quiz":
			_ = h.withErrorHandling("quiz", h.quizCommandHandler(args))(ctx, chatID)
		case "huruf":
			_ = h.withErrorHandling("huruf", h.lettersCommandHandler(args))(ctx, chatID)
		case "batal":
			_ = h.withErrorHandling("batal", h.abandonHandler())(ctx, chatID)
		case "help":
			h.send(newPlainMessage(chatID, helpText))
		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}
		return
	}

	if update.Message.Text == "" {
		return
	}

	_ = h.withErrorHandling("essay", h.essayTextHandler(update.Message.Text))(ctx, chatID)
}

// show edits msgID in place, or sends a new message when msgID is 0.
// It returns the ID of the message showing the text.
func (h *Handler) show(chatID int64, msgID int, text string, kb *tgbotapi.InlineKeyboardMarkup) (int, error) {
	if msgID != 0 {
		edit := newEdit(chatID, msgID, text)
		edit.ReplyMarkup = kb
		if _, err := h.bot.Send(edit); err != nil {
			if isNotModified(err) {
				return msgID, nil
			}
			return 0, fmt.Errorf("edit message: %w", err)
		}
		return msgID, nil
	}

	msg := newMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = kb
	}
	sent, err := h.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return sent.MessageID, nil
}

// clearKeyboard removes the inline keyboard of an older message.
func (h *Handler) clearKeyboard(chatID int64, msgID int) {
	if msgID == 0 {
		return
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, msgID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := h.bot.Request(edit); err != nil && !isNotModified(err) {
		h.logger.Debug("failed to clear keyboard", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answerCallback stops the client spinner, showing text as an alert when set.
func (h *Handler) answerCallback(id, text string) {
	answer := tgbotapi.NewCallback(id, "")
	if text != "" {
		answer = tgbotapi.NewCallbackWithAlert(id, text)
	}
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}
