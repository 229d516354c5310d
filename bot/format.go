package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/qrave1/task-list/entity"
	"github.com/qrave1/task-list/lang"
)

const (
	pageSize = 5

	// подпись кнопки удаления, длиннее не влезает в одну строку клавиатуры
	buttonDescriptionLimit = 32

	createdAtLayout = "02.01.2006 15:04"
)

func formatTask(task entity.Task) string {
	return fmt.Sprintf(
		"📌 %s\n🆔 %s\n🕒 %s",
		task.Description,
		task.ID,
		task.CreatedAt.Format(createdAtLayout),
	)
}

func formatFailure(f entity.Failure) string {
	return "❌ " + strings.Join(f.Errors, "\n❌ ")
}

// formatPresenter текст ответа на результат create/delete
func formatPresenter(p entity.Presenter, successTitle string) string {
	switch v := p.(type) {
	case entity.Success:
		return successTitle + "\n\n" + formatTask(v.Task)
	case entity.Failure:
		return formatFailure(v)
	default:
		return lang.FailedStub
	}
}

// taskListPage возвращает текст и клавиатуру для страницы списка.
// Страница за пределами списка сбрасывается на первую.
func taskListPage(tasks []entity.Task, page int) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(tasks) == 0 {
		return lang.TaskListEmpty, nil
	}

	start := page * pageSize
	if page < 0 || start >= len(tasks) {
		start = 0
		page = 0
	}

	end := min(start+pageSize, len(tasks))

	var text strings.Builder
	text.WriteString(lang.TaskListTitle)
	text.WriteString("\n\n")

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := start; i < end; i++ {
		task := tasks[i]
		fmt.Fprintf(&text, "%d. %s\n    %s · %s\n", i+1, task.Description, task.ID, task.CreatedAt.Format(createdAtLayout))

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s %d. %s", lang.DeleteButton, i+1, truncate(task.Description, buttonDescriptionLimit)),
				deletePrefix+task.ID,
			),
		))
	}

	// Кнопки пагинации
	var paginationRow []tgbotapi.InlineKeyboardButton
	if page > 0 {
		paginationRow = append(paginationRow, tgbotapi.NewInlineKeyboardButtonData("⬅️", fmt.Sprintf("%s%d", listPrefix, page-1)))
	}
	if end < len(tasks) {
		paginationRow = append(paginationRow, tgbotapi.NewInlineKeyboardButtonData("➡️", fmt.Sprintf("%s%d", listPrefix, page+1)))
	}
	if len(paginationRow) > 0 {
		rows = append(rows, paginationRow)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return text.String(), &markup
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}

	return string(r[:limit-1]) + "…"
}
