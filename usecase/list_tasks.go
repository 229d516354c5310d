package usecase

import (
	"context"

	"github.com/qrave1/task-list/entity"
	"github.com/qrave1/task-list/repository"
)

type ListTasks struct {
	repo repository.TaskRepository
}

func NewListTasks(repo repository.TaskRepository) *ListTasks {
	return &ListTasks{repo: repo}
}

// Execute возвращает задачи от новых к старым
func (uc *ListTasks) Execute(ctx context.Context) ([]entity.Task, error) {
	return uc.repo.FindAll(ctx)
}
