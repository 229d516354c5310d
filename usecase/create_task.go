package usecase

import (
	"context"
	"log/slog"

	"github.com/qrave1/task-list/entity"
	"github.com/qrave1/task-list/repository"
	"github.com/qrave1/task-list/validation"
)

// CreateTask очищает и проверяет описание, после чего сохраняет новую задачу
type CreateTask struct {
	repo repository.TaskRepository
}

func NewCreateTask(repo repository.TaskRepository) *CreateTask {
	return &CreateTask{repo: repo}
}

// Execute возвращает ровно то, что вернул репозиторий, если дело дошло до записи.
// error означает сбой хранилища.
func (uc *CreateTask) Execute(ctx context.Context, rawDescription string) (entity.Presenter, error) {
	description := validation.Sanitize(rawDescription)

	res := validation.ValidateDescription(description)
	if !res.Valid {
		slog.Debug("task description rejected", slog.Any("errors", res.Errors))
		return entity.NewFailure(res.Errors...), nil
	}

	p, err := uc.repo.Create(ctx, entity.NewTask(description))
	if err != nil {
		return nil, err
	}

	if s, ok := p.(entity.Success); ok {
		slog.Info("task created", slog.String("id", s.Task.ID))
	}

	return p, nil
}
