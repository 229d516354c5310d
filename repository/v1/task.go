package v1

import (
	"fmt"
	"time"

	"github.com/qrave1/task-list/entity"
)

// CreatedAtLayout фиксированная ширина: лексикографический порядок совпадает с хронологическим
const CreatedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Task struct {
	ID          string `db:"id"`
	Description string `db:"description"`
	CreatedAt   string `db:"created_at"` // UTC в формате CreatedAtLayout
}

func NewTaskFromEntity(t entity.Task) Task {
	return Task{
		ID:          t.ID,
		Description: t.Description,
		CreatedAt:   FormatCreatedAt(t.CreatedAt),
	}
}

func NewEntityTask(t Task) (entity.Task, error) {
	createdAt, err := time.Parse(CreatedAtLayout, t.CreatedAt)
	if err != nil {
		return entity.Task{}, fmt.Errorf("parse created_at of task %s: %w", t.ID, err)
	}

	return entity.Task{
		ID:          t.ID,
		Description: t.Description,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}
