package entity

import "encoding/json"

// Presenter результат операции над задачей: либо Success, либо Failure.
type Presenter interface {
	Succeeded() bool

	presenter()
}

// Success задача, затронутая операцией
type Success struct {
	Task Task
}

// Failure непустой список ошибок для пользователя
type Failure struct {
	Errors []string
}

func NewSuccess(task Task) Success {
	return Success{Task: task}
}

func NewFailure(errs ...string) Failure {
	return Failure{Errors: errs}
}

func (Success) Succeeded() bool { return true }
func (Failure) Succeeded() bool { return false }

func (Success) presenter() {}
func (Failure) presenter() {}

func (s Success) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool `json:"success"`
		Task    Task `json:"task"`
	}{
		Success: true,
		Task:    s.Task,
	})
}

func (f Failure) MarshalJSON() ([]byte, error) {
	errs := f.Errors
	if errs == nil {
		errs = []string{}
	}

	return json.Marshal(struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}{
		Success: false,
		Errors:  errs,
	})
}
