package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAdd              = "add"
	KeySend             = "send"
	KeyDelete           = "delete"
	KeyNewTask          = "new_task"
	KeyNoTasks          = "no_tasks"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyEndpointURL      = "endpoint_url"
	KeySendTimeout      = "send_timeout"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeySending          = "sending"
	KeySendSucceeded    = "send_succeeded"
	KeySendFailed       = "send_failed"
	KeyTaskSaveFailed   = "task_save_failed"
	KeyTaskDeleteFailed = "task_delete_failed"
	KeyInvalidURL       = "invalid_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Todo",
		KeyAdd:              "Add",
		KeySend:             "Send",
		KeyDelete:           "Delete",
		KeyNewTask:          "New task..",
		KeyNoTasks:          "Relax, you have no tasks for today :)",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyEndpointURL:      "Send to URL",
		KeySendTimeout:      "Send timeout (seconds)",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeySending:          "Sending tasks...",
		KeySendSucceeded:    "Sent %d tasks (status %d)",
		KeySendFailed:       "Send failed",
		KeyTaskSaveFailed:   "Could not save task",
		KeyTaskDeleteFailed: "Could not delete task",
		KeyInvalidURL:       "Invalid URL",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Задачи",
		KeyAdd:              "Добавить",
		KeySend:             "Отправить",
		KeyDelete:           "Удалить",
		KeyNewTask:          "Новая задача..",
		KeyNoTasks:          "Отдыхайте, на сегодня задач нет :)",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyEndpointURL:      "Адрес отправки",
		KeySendTimeout:      "Тайм-аут отправки (секунды)",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeySending:          "Отправка задач...",
		KeySendSucceeded:    "Отправлено задач: %d (статус %d)",
		KeySendFailed:       "Ошибка отправки",
		KeyTaskSaveFailed:   "Не удалось сохранить задачу",
		KeyTaskDeleteFailed: "Не удалось удалить задачу",
		KeyInvalidURL:       "Неверный URL",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Tarefas",
		KeyAdd:              "Adicionar",
		KeySend:             "Enviar",
		KeyDelete:           "Excluir",
		KeyNewTask:          "Nova tarefa..",
		KeyNoTasks:          "Relaxe, você não tem tarefas para hoje :)",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyEndpointURL:      "URL de envio",
		KeySendTimeout:      "Tempo limite de envio (segundos)",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeySending:          "Enviando tarefas...",
		KeySendSucceeded:    "%d tarefas enviadas (status %d)",
		KeySendFailed:       "Falha no envio",
		KeyTaskSaveFailed:   "Não foi possível salvar a tarefa",
		KeyTaskDeleteFailed: "Não foi possível excluir a tarefa",
		KeyInvalidURL:       "URL inválida",
	}
}
