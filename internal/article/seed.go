package article

import (
	"time"

	"newsflow/internal/i18n"
)

const day = 24 * time.Hour

type seedText struct {
	title, excerpt, content, author string
}

type seedMeta struct {
	id        string
	category  Category
	views     int64
	reactions int64
	age       time.Duration
}

var seedMetas = []seedMeta{
	{"1", Technology, 12500, 850, 2 * day},
	{"2", Business, 8400, 320, 5 * day},
	{"3", Science, 15600, 1200, 1 * day},
	{"4", Sports, 45000, 5600, day / 2},
}

var seedTexts = map[i18n.Language][]seedText{
	i18n.English: {
		{
			"The Future of Quantum Computing",
			"How quantum superiority is reshaping the tech landscape in 2024.",
			"Quantum computing is no longer a distant dream. With recent breakthroughs...",
			"Alice Johnson",
		},
		{
			"Global Markets Rally Amidst Tech Surge",
			"Investors are optimistic as major tech giants report record earnings.",
			"The S&P 500 hit a new high today as technology stocks led the charge...",
			"Mark Smith",
		},
		{
			"Mars Colonization: A Pipe Dream?",
			"Scientists debate the feasibility of a human settlement on the Red Planet.",
			"While SpaceX continues its ambitious starship testing, biologists warn...",
			"Dr. Sarah Lee",
		},
		{
			"Championship Finals: The Underdog Wins",
			"In a stunning turn of events, the local team takes the trophy home.",
			"The stadium was electric last night as the final whistle blew...",
			"Tom Brady",
		},
	},
	i18n.Russian: {
		{
			"Будущее квантовых вычислений",
			"Как квантовое превосходство меняет технологический ландшафт в 2024 году.",
			"Квантовые вычисления больше не являются далекой мечтой. Благодаря недавним прорывам в области сверхпроводников, мы стоим на пороге новой эры...",
			"Алиса Иванова",
		},
		{
			"Мировые рынки растут на фоне технологического бума",
			"Инвесторы оптимистичны, поскольку крупнейшие технологические гиганты сообщают о рекордных доходах.",
			"Индекс S&P 500 достиг нового максимума сегодня, так как технологические акции возглавили рост...",
			"Марк Смирнов",
		},
		{
			"Колонизация Марса: Несбыточная мечта?",
			"Ученые спорят о целесообразности поселения людей на Красной планете.",
			"Пока SpaceX продолжает свои амбициозные испытания звездолетов, биологи предупреждают о радиации...",
			"Др. Сара Ли",
		},
		{
			"Финал чемпионата: Победа аутсайдера",
			"В потрясающем повороте событий местная команда забирает трофей домой.",
			"Стадион был наэлектризован прошлой ночью, когда прозвучал финальный свисток...",
			"Том Брэди",
		},
	},
}

// SeedArticles returns the mock dataset for lang, timestamped relative to now.
func SeedArticles(lang i18n.Language, now time.Time) []Article {
	texts, ok := seedTexts[lang]
	if !ok {
		texts = seedTexts[i18n.DefaultLanguage]
	}

	out := make([]Article, len(seedMetas))
	for i, m := range seedMetas {
		t := texts[i]
		out[i] = Article{
			ID:        m.id,
			Title:     t.title,
			Excerpt:   t.excerpt,
			Content:   t.content,
			Category:  m.category,
			Author:    t.author,
			ImageURL:  PlaceholderImageURL(i + 1),
			Views:     m.views,
			Reactions: m.reactions,
			CreatedAt: now.Add(-m.age),
			Status:    StatusPublished,
		}
	}
	return out
}

const analyticsWindow = 7

// GenerateAnalytics fabricates the trailing daily window ending today,
// labelled with localized short weekday names, oldest first.
func GenerateAnalytics(loc *i18n.Localizer, now time.Time, intN func(int) int) []AnalyticsPoint {
	points := make([]AnalyticsPoint, analyticsWindow)
	for i := range points {
		date := now.AddDate(0, 0, -(analyticsWindow - 1 - i))
		points[i] = AnalyticsPoint{
			Date:      loc.WeekdayShort(date),
			Views:     int64(intN(5000) + 1000),
			Reactions: int64(intN(500) + 50),
		}
	}
	return points
}
