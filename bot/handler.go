package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/qrave1/task-list/lang"
)

const (
	listPrefix   = "list:"
	deletePrefix = "delete:"
)

// HandleUpdates обрабатывает обновления, пока не закроется канал или не отменится ctx
func (b *Botik) HandleUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-b.updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Botik) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		msg := update.Message
		if msg.From == nil || !b.isUserAllowed(msg.From.ID) {
			b.rejectMessage(msg)
			return
		}

		switch {
		case msg.IsCommand():
			slog.Info(
				"got new command",
				slog.String("command", msg.Command()),
			)

			b.handleCommand(ctx, msg)
		default:
			slog.Debug("got new message", slog.Int64("chat_id", msg.Chat.ID))

			b.handleMessage(ctx, msg)
		}
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		if cb.From == nil || !b.isUserAllowed(cb.From.ID) {
			slog.Warn("Unauthorized callback attempt", slog.String("callback_id", cb.ID))
			if err := b.answerCallback(cb.ID, lang.NotAllowed); err != nil {
				slog.Error(err.Error())
			}
			return
		}

		slog.Info("got new callback query", slog.String("data", cb.Data))

		b.handleCallbackQuery(ctx, cb)
	}
}

func (b *Botik) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case StartCommand:
		b.StartCmd(msg.Chat.ID, msg.MessageID)
	case HelpCommand:
		b.HelpCmd(msg.Chat.ID, msg.MessageID)
	case AddCommand:
		b.AddCmd(ctx, msg.Chat.ID, msg.MessageID, msg.CommandArguments())
	case ListCommand:
		b.ListCmd(ctx, msg.Chat.ID)
	case DeleteCommand:
		b.DeleteCmd(ctx, msg.Chat.ID, msg.MessageID, msg.CommandArguments())
	}
}

// handleMessage любой обычный текст считается описанием новой задачи
func (b *Botik) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	b.AddCmd(ctx, msg.Chat.ID, msg.MessageID, msg.Text)
}

func (b *Botik) handleCallbackQuery(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch {
	case strings.HasPrefix(cb.Data, listPrefix):
		page, _ := strconv.Atoi(strings.TrimPrefix(cb.Data, listPrefix))
		if err := b.answerCallback(cb.ID, ""); err != nil {
			slog.Error(err.Error())
		}
		b.refreshList(ctx, chatID, messageID, page)
	case strings.HasPrefix(cb.Data, deletePrefix):
		b.deleteFromList(ctx, cb.ID, chatID, messageID, strings.TrimPrefix(cb.Data, deletePrefix))
	}
}

func (b *Botik) rejectMessage(msg *tgbotapi.Message) {
	var userID int64
	if msg.From != nil {
		userID = msg.From.ID
	}
	slog.Warn("Unauthorized access attempt", slog.Int64("user_id", userID))

	if err := b.sendText(msg.Chat.ID, lang.NotAllowed, WithReply(msg.MessageID)); err != nil {
		slog.Error(err.Error())
	}
}
