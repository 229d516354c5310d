package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageOption определяет тип функции-опции
type MessageOption func(*tgbotapi.MessageConfig)

// WithReply добавляет опцию ответа на сообщение
func WithReply(messageID int) MessageOption {
	return func(msg *tgbotapi.MessageConfig) {
		msg.ReplyToMessageID = messageID
	}
}

// WithKeyboard прикрепляет inline-клавиатуру
func WithKeyboard(markup *tgbotapi.InlineKeyboardMarkup) MessageOption {
	return func(msg *tgbotapi.MessageConfig) {
		if markup != nil {
			msg.ReplyMarkup = *markup
		}
	}
}

func (b *Botik) sendText(chatID int64, text string, opts ...MessageOption) error {
	msg := tgbotapi.NewMessage(chatID, text)

	// Применяем все переданные опции
	for _, opt := range opts {
		opt(&msg)
	}

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	return nil
}

func (b *Botik) editText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	var edit tgbotapi.Chattable
	if markup != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}

	if _, err := b.api.Send(edit); err != nil {
		return fmt.Errorf("editing message: %w", err)
	}

	return nil
}

func (b *Botik) answerCallback(callbackID, text string) error {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("answering callback: %w", err)
	}

	return nil
}
