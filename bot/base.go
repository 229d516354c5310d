package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/qrave1/task-list/config"
	"github.com/qrave1/task-list/entity"
)

// sender часть tgbotapi.BotAPI, через которую бот отвечает пользователям
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TaskCreator interface {
	Execute(ctx context.Context, rawDescription string) (entity.Presenter, error)
}

type TaskDeleter interface {
	Execute(ctx context.Context, rawID string) (entity.Presenter, error)
}

type TaskLister interface {
	Execute(ctx context.Context) ([]entity.Task, error)
}

type Botik struct {
	bot    *tgbotapi.BotAPI
	api    sender
	config *config.Config

	createTask TaskCreator
	deleteTask TaskDeleter
	listTasks  TaskLister

	allowed map[int64]struct{}

	updates tgbotapi.UpdatesChannel
	server  *http.Server
}

func NewBotik(
	cfg *config.Config,
	createTask TaskCreator,
	deleteTask TaskDeleter,
	listTasks TaskLister,
) (*Botik, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	bot.Debug = cfg.Debug
	slog.Info("Authorized on account", "username", bot.Self.UserName)

	b := newBotik(bot, cfg, createTask, deleteTask, listTasks)
	b.bot = bot

	return b, nil
}

func newBotik(
	api sender,
	cfg *config.Config,
	createTask TaskCreator,
	deleteTask TaskDeleter,
	listTasks TaskLister,
) *Botik {
	allowed := make(map[int64]struct{}, len(cfg.Telegram.AllowedUserIDs))
	for _, id := range cfg.Telegram.AllowedUserIDs {
		allowed[id] = struct{}{}
	}

	return &Botik{
		api:        api,
		config:     cfg,
		createTask: createTask,
		deleteTask: deleteTask,
		listTasks:  listTasks,
		allowed:    allowed,
	}
}

// Start подписывается на обновления: long polling в debug-режиме или без URL вебхука,
// иначе регистрирует вебхук и поднимает HTTP-сервер.
func (b *Botik) Start() error {
	if !b.config.UsesWebhook() {
		slog.Info("Starting in polling mode")

		if _, err := b.bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			return fmt.Errorf("failed to delete webhook: %w", err)
		}

		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		b.updates = b.bot.GetUpdatesChan(u)

		return nil
	}

	slog.Info("Starting in webhook mode", slog.String("url", b.config.Telegram.Webhook.URL))

	wh, err := tgbotapi.NewWebhook(b.config.Telegram.Webhook.URL)
	if err != nil {
		return fmt.Errorf("failed to create webhook: %w", err)
	}

	if _, err = b.bot.Request(wh); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	info, err := b.bot.GetWebhookInfo()
	if err != nil {
		return fmt.Errorf("failed to get webhook info: %w", err)
	}

	if info.LastErrorDate != 0 {
		slog.Error("Telegram callback failed", "error", info.LastErrorMessage)
	}

	mux := http.NewServeMux()
	updates := make(chan tgbotapi.Update, b.bot.Buffer)
	mux.HandleFunc("/"+b.bot.Token, func(w http.ResponseWriter, r *http.Request) {
		update, err := b.bot.HandleUpdate(r)
		if err != nil {
			slog.Warn("failed to parse webhook update", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		updates <- *update
	})
	b.updates = updates

	b.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", b.config.Telegram.Webhook.Port),
		Handler: mux,
	}

	go func() {
		if err := b.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("webhook server stopped", slog.String("error", err.Error()))
		}
	}()

	return nil
}

// Stop прекращает приём обновлений
func (b *Botik) Stop(ctx context.Context) error {
	if b.server != nil {
		return b.server.Shutdown(ctx)
	}

	if b.bot != nil {
		b.bot.StopReceivingUpdates()
	}

	return nil
}

func (b *Botik) isUserAllowed(userID int64) bool {
	if len(b.allowed) == 0 {
		return true
	}

	_, ok := b.allowed[userID]
	return ok
}
