package validation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sanitize приводит пользовательский ввод к каноническому виду:
// обрезает пробелы по краям и нормализует Unicode в форму NFC.
// Для значений, не являющихся строкой, возвращает пустую строку.
func Sanitize(input any) string {
	var s string

	switch v := input.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return ""
		}
		s = *v
	case []byte:
		s = string(v)
	default:
		return ""
	}

	return norm.NFC.String(strings.TrimSpace(s))
}
