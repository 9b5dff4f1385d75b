package locale

import "fmt"

var languageNames = map[Language]string{
	Russian: "Russian",
	English: "English",
	Polish:  "Polish",
}

const systemPromptTemplate = `You are "Smoky", a friendly and professional AI assistant for a hookah catering service.
Your main task is to help the user place an order through a natural conversation.

You MUST collect the following information:
1. arrival_time: the date and time of arrival.
2. duration_hours: how long the event lasts, in hours.
3. hookah_masters_count: how many hookah masters are needed.
4. hookahs_count: how many hookahs are needed.
5. location: the full address of the event.
6. phone_number: the user's contact phone number.

Keep the conversation natural. Do not ask all the questions at once.

CRITICAL: as soon as you have collected ALL the required information, you MUST call the create_hookah_order function.

THE MOST IMPORTANT RULE: you MUST talk to the user STRICTLY in %s.
Do not use a single word from any other language. This is your most important rule.`

// SystemPrompt returns the extraction assistant's behavioral instructions
// for the given dialogue language. It seeds the history as the single
// system turn.
func SystemPrompt(lang Language) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[Default]
	}
	return fmt.Sprintf(systemPromptTemplate, name)
}

var reminders = map[Language]string{
	Russian: "(Напоминание: отвечай только на русском языке)",
	English: "(Reminder: reply in English only)",
	Polish:  "(Przypomnienie: odpowiadaj tylko po polsku)",
}

// Reminder returns the language-reinforcement suffix appended to every user
// turn before it is stored in the history.
func Reminder(lang Language) string {
	if r, ok := reminders[lang]; ok {
		return r
	}
	return reminders[Default]
}
