// Package locale holds the bot's user-facing texts in every supported language.
package locale

import "sponsorbot/internal/domain"

// Key identifies a localized text
type Key int

const (
	Greeting Key = iota
	SystemPrompt
	Examples
	ResetDone
	Help
	About
	FeedbackPrompt
	FeedbackThanks
	FeedbackFailed
	CompletionError
)

// Keys lists every localized text
var Keys = []Key{
	Greeting,
	SystemPrompt,
	Examples,
	ResetDone,
	Help,
	About,
	FeedbackPrompt,
	FeedbackThanks,
	FeedbackFailed,
	CompletionError,
}

// LanguagePrompt is shown before the user has picked a language, so it is bilingual
const LanguagePrompt = "🗣 Пожалуйста, выбери язык / Please choose a language:"

// Language button labels
const (
	ButtonRU = "🇷🇺 Русский"
	ButtonEN = "🇬🇧 English"
)

// Text returns the text for key in lang
func Text(lang domain.Language, key Key) string {
	switch lang.Normalize() {
	case domain.LanguageRU:
		return ru[key]
	case domain.LanguageEN:
		return en[key]
	default:
		return ru[key]
	}
}

var ru = map[Key]string{
	Greeting: "Привет, я бот-наставник по 12 шагам. Я здесь, чтобы помочь тебе писать шаги 😊\n\n" +
		"Введи запрос, например: \"Какие примеры можно написать на ... точку в ... шаге?\" и я тебе с этим помогу.",
	SystemPrompt: "Ты тёплый, ненавязчивый наставник по 12 шагам Анонимных Наркоманов. " +
		"Отвечай на вопросы по шагам, помогай найти примеры, направляй, но не решай за пользователя.",
	Examples: "💡 Примеры запросов:\n\n" +
		"• Какие примеры можно написать на 3 точку в 4 шаге?\n" +
		"• Помоги понять, что значит первый шаг.\n" +
		"• Как подготовиться к разговору по пятому шагу?",
	ResetDone: "🔄 Диалог сброшен. Выбери язык заново командой /language или просто задай вопрос.",
	Help: "📋 Команды:\n\n" +
		"/start — начать и выбрать язык\n" +
		"/language — сменить язык\n" +
		"/examples — примеры запросов\n" +
		"/reset — сбросить диалог\n" +
		"/feedback — написать отзыв\n" +
		"/about — о боте\n" +
		"/help — эта справка",
	About: "🤝 Я бот-наставник по 12 шагам. Я помогаю обдумывать шаги, подсказываю форматы ответов " +
		"и задаю вопросы, но не пишу шаги за тебя. Я не заменяю живого спонсора и группу.",
	FeedbackPrompt:  "✍️ Напиши свой отзыв одним сообщением, и я передам его разработчикам.",
	FeedbackThanks:  "🙏 Спасибо! Отзыв отправлен.",
	FeedbackFailed:  "❗ Не удалось отправить отзыв. Попробуй позже.",
	CompletionError: "❗ Произошла ошибка при обращении к модели.",
}

var en = map[Key]string{
	Greeting: "Hi, I'm a 12-step sponsor bot here to help you work through the steps. 😊\n\n" +
		"You can ask things like: \"What are some answer examples for ... in step ...?\" and I'll help you.",
	SystemPrompt: "You are a warm, non-intrusive 12-step sponsor bot. Help users think through their steps, " +
		"offer example formats, ask questions, but never solve it for them.",
	Examples: "💡 Example requests:\n\n" +
		"• What are some examples for point 3 in step 4?\n" +
		"• Help me understand what step one means.\n" +
		"• How do I prepare for my fifth step conversation?",
	ResetDone: "🔄 The conversation has been reset. Pick a language again with /language or just ask a question.",
	Help: "📋 Commands:\n\n" +
		"/start — start and choose a language\n" +
		"/language — change the language\n" +
		"/examples — example requests\n" +
		"/reset — reset the conversation\n" +
		"/feedback — send feedback\n" +
		"/about — about the bot\n" +
		"/help — this help",
	About: "🤝 I'm a 12-step sponsor bot. I help you think through your steps, suggest answer formats " +
		"and ask questions, but I never write the steps for you. I don't replace a real sponsor or your group.",
	FeedbackPrompt:  "✍️ Send your feedback as a single message and I'll forward it to the developers.",
	FeedbackThanks:  "🙏 Thank you! Your feedback has been sent.",
	FeedbackFailed:  "❗ Could not send your feedback. Please try again later.",
	CompletionError: "❗ An error occurred while contacting the model.",
}
