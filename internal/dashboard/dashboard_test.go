package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsflow/internal/article"
	"newsflow/internal/i18n"
)

func TestBuild(t *testing.T) {
	base := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	store := article.NewStore(
		article.WithSeed([]article.Article{
			{ID: "a", Category: article.Science, CreatedAt: base, Views: 999},
			{ID: "b", Category: article.Business, CreatedAt: base.Add(time.Hour)},
			{ID: "c", Category: article.Science, CreatedAt: base.Add(-time.Hour)},
		}),
		article.WithAnalytics([]article.AnalyticsPoint{
			{Date: "Mon", Views: 1000, Reactions: 50},
			{Date: "Tue", Views: 11500, Reactions: 70},
		}),
	)

	o := Build(store)

	assert.Equal(t, int64(12500), o.TotalViews)
	assert.Equal(t, int64(120), o.TotalReactions)
	assert.Equal(t, 3, o.ArticleCount)
	assert.Len(t, o.Analytics, 2)
	assert.Equal(t, []article.CategoryStat{{Name: "Science", Value: 2}, {Name: "Business", Value: 1}}, o.Categories)

	ids := make([]string, 0, len(o.Recent))
	for _, a := range o.Recent {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestBuild_Empty(t *testing.T) {
	o := Build(article.NewStore())

	assert.Zero(t, o.TotalViews)
	assert.Zero(t, o.ArticleCount)
	assert.Empty(t, o.Recent)
	assert.Empty(t, o.Categories)
}

func TestTotals(t *testing.T) {
	o := Overview{TotalViews: 12500, TotalReactions: 120, ArticleCount: 4}

	got := o.Totals(i18n.MustNew(i18n.English))
	assert.Equal(t, Totals{Views: "12,500", Reactions: "120", Articles: "4"}, got)
}
