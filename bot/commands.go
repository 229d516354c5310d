package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/qrave1/task-list/entity"
	"github.com/qrave1/task-list/lang"
)

const (
	StartCommand  = "start"
	HelpCommand   = "help"
	AddCommand    = "add"
	ListCommand   = "list"
	DeleteCommand = "delete"
)

func (b *Botik) StartCmd(chatID int64, msgID int) {
	if err := b.sendText(chatID, lang.Start, WithReply(msgID)); err != nil {
		slog.Error("handle /start command", slog.String("error", err.Error()))
	}
}

func (b *Botik) HelpCmd(chatID int64, msgID int) {
	if err := b.sendText(chatID, lang.Help, WithReply(msgID)); err != nil {
		slog.Error("handle /help command", slog.String("error", err.Error()))
	}
}

func (b *Botik) AddCmd(ctx context.Context, chatID int64, msgID int, description string) {
	if strings.TrimSpace(description) == "" {
		b.reply(chatID, msgID, lang.AddUsage)
		return
	}

	p, err := b.createTask.Execute(ctx, description)
	if err != nil {
		slog.Error("failed to create task", slog.String("error", err.Error()))
		b.reply(chatID, msgID, lang.FailedStub)
		return
	}

	b.reply(chatID, msgID, formatPresenter(p, lang.TaskCreated))
}

func (b *Botik) ListCmd(ctx context.Context, chatID int64) {
	tasks, err := b.listTasks.Execute(ctx)
	if err != nil {
		slog.Error("failed to list tasks", slog.String("error", err.Error()))
		b.reply(chatID, 0, lang.FailedStub)
		return
	}

	text, markup := taskListPage(tasks, 0)
	if err := b.sendText(chatID, text, WithKeyboard(markup)); err != nil {
		slog.Error("handle /list command", slog.String("error", err.Error()))
	}
}

func (b *Botik) DeleteCmd(ctx context.Context, chatID int64, msgID int, id string) {
	if strings.TrimSpace(id) == "" {
		b.reply(chatID, msgID, lang.DeleteUsage)
		return
	}

	p, err := b.deleteTask.Execute(ctx, id)
	if err != nil {
		slog.Error("failed to delete task", slog.String("error", err.Error()))
		b.reply(chatID, msgID, lang.FailedStub)
		return
	}

	b.reply(chatID, msgID, formatPresenter(p, lang.TaskDeleted))
}

// refreshList перерисовывает сообщение со списком на нужной странице
func (b *Botik) refreshList(ctx context.Context, chatID int64, messageID int, page int) {
	tasks, err := b.listTasks.Execute(ctx)
	if err != nil {
		slog.Error("failed to list tasks", slog.String("error", err.Error()))
		return
	}

	text, markup := taskListPage(tasks, page)
	if err := b.editText(chatID, messageID, text, markup); err != nil {
		slog.Error("failed to refresh task list", slog.String("error", err.Error()))
	}
}

func (b *Botik) deleteFromList(ctx context.Context, callbackID string, chatID int64, messageID int, id string) {
	p, err := b.deleteTask.Execute(ctx, id)
	if err != nil {
		slog.Error("failed to delete task", slog.String("id", id), slog.String("error", err.Error()))
		if err := b.answerCallback(callbackID, lang.FailedStub); err != nil {
			slog.Error(err.Error())
		}
		return
	}

	answer := lang.TaskDeleted
	if f, ok := p.(entity.Failure); ok {
		answer = strings.Join(f.Errors, "\n")
	}

	if err := b.answerCallback(callbackID, answer); err != nil {
		slog.Error(err.Error())
	}

	b.refreshList(ctx, chatID, messageID, 0)
}

func (b *Botik) reply(chatID int64, msgID int, text string) {
	var opts []MessageOption
	if msgID != 0 {
		opts = append(opts, WithReply(msgID))
	}

	if err := b.sendText(chatID, text, opts...); err != nil {
		slog.Error("failed to reply", slog.String("error", err.Error()))
	}
}
