package generate

import (
	"fmt"

	"newsflow/internal/i18n"
)

const summaryInputLimit = 1000

func bodyPrompt(lang i18n.Language, title, category string) string {
	if lang == i18n.Russian {
		return fmt.Sprintf("Напиши подробную новостную статью на тему \"%s\" для категории \"%s\". "+
			"Тон должен быть профессиональным и журналистским. "+
			"Структурируй статью с введением, основной частью и заключением. "+
			"Верни ТОЛЬКО текст основного содержания, без markdown форматирования заголовков.", title, category)
	}
	return fmt.Sprintf("Write a comprehensive news article about \"%s\" suitable for the \"%s\" category. "+
		"The tone should be professional and journalistic. "+
		"Structure it with an introduction, body paragraphs, and a conclusion. "+
		"Return ONLY the body content text, no markdown formatting for headers.", title, category)
}

func summaryPrompt(lang i18n.Language, content string) string {
	excerpt := truncateRunes(content, summaryInputLimit) + "..."
	if lang == i18n.Russian {
		return "Сделай короткое, привлекательное саммари (резюме) из 2 предложений для следующего текста: " + excerpt
	}
	return "Summarize the following article content into a short, catchy 2-sentence excerpt: " + excerpt
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
