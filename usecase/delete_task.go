package usecase

import (
	"context"
	"log/slog"

	"github.com/qrave1/task-list/entity"
	"github.com/qrave1/task-list/repository"
	"github.com/qrave1/task-list/validation"
)

const ErrInvalidID = "Invalid ID"

// DeleteTask удаляет задачу по идентификатору
type DeleteTask struct {
	repo repository.TaskRepository
}

func NewDeleteTask(repo repository.TaskRepository) *DeleteTask {
	return &DeleteTask{repo: repo}
}

// Execute на пустом после очистки id отвечает "Invalid ID" и в хранилище не ходит
func (uc *DeleteTask) Execute(ctx context.Context, rawID string) (entity.Presenter, error) {
	id := validation.Sanitize(rawID)
	if id == "" {
		return entity.NewFailure(ErrInvalidID), nil
	}

	p, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Succeeded() {
		slog.Info("task deleted", slog.String("id", id))
	}

	return p, nil
}
