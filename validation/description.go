package validation

import (
	"github.com/go-playground/validator/v10"
)

const (
	ErrDescriptionTooShort = "Description must be longer than 3 characters."
	ErrDescriptionTooLong  = "Description must be shorter than 255 characters."
)

type rule struct {
	tag     string
	message string
}

// Длина строки для min/max считается validator'ом в рунах, а не в байтах.
var descriptionRules = []rule{
	{tag: "min=4", message: ErrDescriptionTooShort},
	{tag: "max=255", message: ErrDescriptionTooLong},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Result итог проверки описания задачи
type Result struct {
	Valid  bool
	Errors []string
}

// ValidateDescription проверяет ограничения на длину описания.
// Каждое правило проверяется независимо, ошибки накапливаются.
func ValidateDescription(description string) Result {
	var errs []string

	for _, r := range descriptionRules {
		if err := validate.Var(description, r.tag); err != nil {
			errs = append(errs, r.message)
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
