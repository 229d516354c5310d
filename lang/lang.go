package lang

const (
	Start = "Привет! Я веду короткий список задач.\n\n" +
		"Просто пришли текст, и я добавлю его как задачу.\n" +
		"/help - список команд"

	Help = "Команды:\n" +
		"/add <текст> - добавить задачу\n" +
		"/list - все задачи, новые сверху\n" +
		"/delete <id> - удалить задачу\n\n" +
		"Описание задачи: от 4 до 255 символов, повторяться не может."

	FailedStub = "Что-то пошло не так, попробуй ещё раз позже"

	TaskCreated   = "✅ Задача добавлена"
	TaskDeleted   = "🗑 Задача удалена"
	TaskListTitle = "📝 Задачи:"
	TaskListEmpty = "Задач пока нет"
	NotAllowed    = "У тебя нет доступа к этому боту"

	AddUsage    = "Напиши описание после команды: /add Купить хлеб"
	DeleteUsage = "Укажи id задачи: /delete <id>"

	DeleteButton = "🗑"
)
