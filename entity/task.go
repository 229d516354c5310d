package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          string    `json:"id"`          // UUIDv7, генерируется при создании
	Description string    `json:"description"` // очищенное и проверенное описание
	CreatedAt   time.Time `json:"createdAt"`   // момент создания (UTC)
}

// NewTask собирает новую задачу со свежими ID и временем создания.
// Описание должно быть уже очищено и проверено вызывающей стороной.
func NewTask(description string) Task {
	return Task{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
