// Package dashboard aggregates the admin overview from the article store.
package dashboard

import (
	"newsflow/internal/article"
	"newsflow/internal/i18n"
)

// Source is the part of the store the dashboard reads.
type Source interface {
	Query(search, category string) []article.Article
	Len() int
	Analytics() []article.AnalyticsPoint
	CategoryStats() []article.CategoryStat
}

type Overview struct {
	TotalViews     int64                    `json:"totalViews"`
	TotalReactions int64                    `json:"totalReactions"`
	ArticleCount   int                      `json:"articleCount"`
	Analytics      []article.AnalyticsPoint `json:"analytics"`
	Categories     []article.CategoryStat   `json:"categories"`
	Recent         []article.Article        `json:"recent"`
}

// Build sums views and reactions over the analytics window, not over articles.
func Build(src Source) Overview {
	o := Overview{
		ArticleCount: src.Len(),
		Analytics:    src.Analytics(),
		Categories:   src.CategoryStats(),
		Recent:       src.Query("", article.AllCategories),
	}
	for _, p := range o.Analytics {
		o.TotalViews += p.Views
		o.TotalReactions += p.Reactions
	}
	return o
}

// Totals are the KPI cards formatted for display.
type Totals struct {
	Views     string `json:"views"`
	Reactions string `json:"reactions"`
	Articles  string `json:"articles"`
}

func (o Overview) Totals(loc *i18n.Localizer) Totals {
	return Totals{
		Views:     loc.FormatNumber(o.TotalViews),
		Reactions: loc.FormatNumber(o.TotalReactions),
		Articles:  loc.FormatNumber(int64(o.ArticleCount)),
	}
}
