package locale

// Language is one of the closed set of dialogue languages the assistant
// supports. The set is fixed at build time; anything else falls back to
// Default.
type Language string

const (
	Russian Language = "ru"
	English Language = "en"
	Polish  Language = "pl"
)

// Default is used when a language choice cannot be validated.
const Default = Russian

// Supported returns the supported languages in presentation order.
func Supported() []Language {
	return []Language{Russian, English, Polish}
}

// Parse validates a language code, falling back to Default for anything
// outside the supported set.
func Parse(code string) Language {
	switch Language(code) {
	case Russian, English, Polish:
		return Language(code)
	default:
		return Default
	}
}

// Key identifies one of the fixed user-facing messages.
type Key string

const (
	KeyLanguagePrompt Key = "language_prompt"
	KeyWelcome        Key = "welcome"
	KeyThinking       Key = "thinking"
	KeyTimeoutError   Key = "timeout_error"
	KeyGenericError   Key = "generic_error"
	KeySummaryTitle   Key = "summary_title"
	KeySummaryWhen    Key = "summary_when"
	KeySummaryHours   Key = "summary_duration"
	KeySummaryHookahs Key = "summary_hookahs"
	KeySummaryMasters Key = "summary_masters"
	KeySummaryWhere   Key = "summary_where"
	KeySummaryPhone   Key = "summary_phone"
	KeySummaryClient  Key = "summary_client"
	KeyButtonConfirm  Key = "button_confirm"
	KeyButtonEdit     Key = "button_edit"
	KeyThanks         Key = "confirmation_thanks"
	KeyEditPrompt     Key = "edit_prompt"
)

// ButtonLabel returns the labelled language choice shown on the selection
// keyboard.
func ButtonLabel(lang Language) string {
	switch lang {
	case Russian:
		return "🇷🇺 Русский"
	case English:
		return "🇬🇧 English"
	case Polish:
		return "🇵🇱 Polski"
	default:
		return string(lang)
	}
}

var messages = map[Language]map[Key]string{
	Russian: {
		KeyWelcome:        "Привет! Я Smoky, ассистент кальянного кейтеринга. Расскажите, какое мероприятие вы планируете?",
		KeyThinking:       "Думаю...",
		KeyTimeoutError:   "Сервис отвечает слишком долго. Пожалуйста, отправьте сообщение ещё раз.",
		KeyGenericError:   "Что-то пошло не так. Пожалуйста, отправьте сообщение ещё раз.",
		KeySummaryTitle:   "Проверьте детали заказа",
		KeySummaryWhen:    "Когда",
		KeySummaryHours:   "На сколько часов",
		KeySummaryHookahs: "Кальяны",
		KeySummaryMasters: "Мастера",
		KeySummaryWhere:   "Куда",
		KeySummaryPhone:   "Телефон",
		KeySummaryClient:  "Клиент",
		KeyButtonConfirm:  "✅ Подтвердить",
		KeyButtonEdit:     "✏️ Изменить",
		KeyThanks:         "Спасибо! Заказ передан оператору, мы свяжемся с вами в ближайшее время.",
		KeyEditPrompt:     "Хорошо, что нужно изменить?",
	},
	English: {
		KeyWelcome:        "Hi! I'm Smoky, your hookah catering assistant. Tell me about the event you're planning.",
		KeyThinking:       "Thinking...",
		KeyTimeoutError:   "The service is taking too long to respond. Please send your message again.",
		KeyGenericError:   "Something went wrong. Please send your message again.",
		KeySummaryTitle:   "Please review your order",
		KeySummaryWhen:    "When",
		KeySummaryHours:   "Duration (hours)",
		KeySummaryHookahs: "Hookahs",
		KeySummaryMasters: "Masters",
		KeySummaryWhere:   "Where",
		KeySummaryPhone:   "Phone",
		KeySummaryClient:  "Client",
		KeyButtonConfirm:  "✅ Confirm",
		KeyButtonEdit:     "✏️ Edit",
		KeyThanks:         "Thank you! Your order has been sent to our operator, we'll be in touch shortly.",
		KeyEditPrompt:     "Sure, what would you like to change?",
	},
	Polish: {
		KeyWelcome:        "Cześć! Jestem Smoky, asystent cateringu sziszy. Opowiedz mi o wydarzeniu, które planujesz.",
		KeyThinking:       "Myślę...",
		KeyTimeoutError:   "Serwis odpowiada zbyt długo. Proszę wysłać wiadomość ponownie.",
		KeyGenericError:   "Coś poszło nie tak. Proszę wysłać wiadomość ponownie.",
		KeySummaryTitle:   "Sprawdź szczegóły zamówienia",
		KeySummaryWhen:    "Kiedy",
		KeySummaryHours:   "Na ile godzin",
		KeySummaryHookahs: "Sziszy",
		KeySummaryMasters: "Mistrzowie",
		KeySummaryWhere:   "Gdzie",
		KeySummaryPhone:   "Telefon",
		KeySummaryClient:  "Klient",
		KeyButtonConfirm:  "✅ Potwierdź",
		KeyButtonEdit:     "✏️ Zmień",
		KeyThanks:         "Dziękujemy! Zamówienie zostało przekazane operatorowi, wkrótce się skontaktujemy.",
		KeyEditPrompt:     "Jasne, co chcesz zmienić?",
	},
}

// languagePrompt is shown before a language is chosen, so it carries all
// three languages at once.
const languagePrompt = "Please choose your language / Пожалуйста, выберите язык / Proszę wybrać język:"

// Message renders the message for the given key in the given language.
// Unknown languages fall back to Default; a key missing from the table is a
// programming error and renders as the key itself.
func Message(lang Language, key Key) string {
	if key == KeyLanguagePrompt {
		return languagePrompt
	}
	table, ok := messages[lang]
	if !ok {
		table = messages[Default]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	return string(key)
}
