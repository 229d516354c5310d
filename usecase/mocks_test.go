package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/qrave1/task-list/entity"
)

// MockTaskRepository implements repository.TaskRepository for testing
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindAll(ctx context.Context) ([]entity.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]entity.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task entity.Task) (entity.Presenter, error) {
	args := m.Called(ctx, task)
	p, _ := args.Get(0).(entity.Presenter)
	return p, args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id string) (entity.Presenter, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(entity.Presenter)
	return p, args.Error(1)
}
