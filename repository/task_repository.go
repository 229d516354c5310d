package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/qrave1/task-list/entity"
	v1 "github.com/qrave1/task-list/repository/v1"
)

const (
	ErrTaskAlreadyExists = "Todo with the same ID or description already exists."
	ErrTaskNotFound      = "Todo with the given ID does not exist."
)

var ErrNilDB = errors.New("repository: nil database handle")

const tasksTable = "tasks"

var taskColumns = []string{"id", "description", "created_at"}

type TaskRepository interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	Create(ctx context.Context, task entity.Task) (entity.Presenter, error)
	Delete(ctx context.Context, id string) (entity.Presenter, error)
}

// TaskRepositoryImpl Репозиторий для работы с задачами.
// Уникальность id и description обеспечивает сама SQLite.
type TaskRepositoryImpl struct {
	db *sql.DB
}

func NewTaskRepositoryImpl(db *sql.DB) (*TaskRepositoryImpl, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	return &TaskRepositoryImpl{db: db}, nil
}

// FindAll возвращает все задачи, новые первыми
func (r *TaskRepositoryImpl) FindAll(ctx context.Context) ([]entity.Task, error) {
	query, args, err := sq.Select(taskColumns...).
		From(tasksTable).
		OrderBy("created_at DESC", "description DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find all query: %w", err)
	}

	var rows []v1.Task
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]entity.Task, 0, len(rows))
	for _, row := range rows {
		task, err := v1.NewEntityTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Create сохраняет задачу одним INSERT. Если сработало ограничение
// уникальности по id или description, строка не вставляется.
func (r *TaskRepositoryImpl) Create(ctx context.Context, task entity.Task) (entity.Presenter, error) {
	row := v1.NewTaskFromEntity(task)

	query, args, err := sq.Insert(tasksTable).
		Columns(taskColumns...).
		Values(row.ID, row.Description, row.CreatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected (insert task): %w", err)
	}

	if n == 0 {
		return entity.NewFailure(ErrTaskAlreadyExists), nil
	}

	stored, err := v1.NewEntityTask(row)
	if err != nil {
		return nil, err
	}

	return entity.NewSuccess(stored), nil
}

// Delete удаляет задачу и возвращает её прежнее состояние
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id string) (entity.Presenter, error) {
	query, args, err := sq.Delete(tasksTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, description, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete query: %w", err)
	}

	var rows []v1.Task
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	if len(rows) == 0 {
		return entity.NewFailure(ErrTaskNotFound), nil
	}

	task, err := v1.NewEntityTask(rows[0])
	if err != nil {
		return nil, err
	}

	return entity.NewSuccess(task), nil
}
