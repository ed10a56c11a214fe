// Package editor models the unsaved article form and its auto-write flow.
// A draft only reaches the store through Patch.
package editor

import (
	"context"
	"errors"

	"newsflow/internal/article"
)

var ErrTitleRequired = errors.New("title required before generating content")

type Draft struct {
	ID       string           `json:"id,omitempty"`
	Title    string           `json:"title"`
	Excerpt  string           `json:"excerpt"`
	Content  string           `json:"content"`
	Category article.Category `json:"category"`
	ImageURL string           `json:"imageUrl"`
	Status   article.Status   `json:"status"`
}

func NewDraft() Draft {
	return Draft{
		Category: article.DefaultCategory,
		Status:   article.StatusDraft,
	}
}

func DraftFrom(a article.Article) Draft {
	return Draft{
		ID:       a.ID,
		Title:    a.Title,
		Excerpt:  a.Excerpt,
		Content:  a.Content,
		Category: a.Category,
		ImageURL: a.ImageURL,
		Status:   a.Status,
	}
}

// Patch carries every form field. Author is not editable and stays absent.
func (d Draft) Patch() article.Patch {
	return article.Patch{
		ID:       d.ID,
		Title:    &d.Title,
		Excerpt:  &d.Excerpt,
		Content:  &d.Content,
		Category: &d.Category,
		ImageURL: &d.ImageURL,
		Status:   &d.Status,
	}
}

// ContentWriter is the generation surface the editor needs.
type ContentWriter interface {
	GenerateArticleBody(ctx context.Context, title, category string) string
	GenerateSummary(ctx context.Context, content string) string
}

// AutoWrite fills Content from the title and category, then Excerpt from the
// new content. The input draft is not modified.
func AutoWrite(ctx context.Context, w ContentWriter, d Draft) (Draft, error) {
	if d.Title == "" {
		return d, ErrTitleRequired
	}
	category := d.Category
	if category == "" {
		category = article.DefaultCategory
	}

	d.Content = w.GenerateArticleBody(ctx, d.Title, string(category))
	d.Excerpt = w.GenerateSummary(ctx, d.Content)
	return d, nil
}

// RandomImageURL picks a placeholder image; intN is rand.IntN or a seeded equivalent.
func RandomImageURL(intN func(int) int) string {
	return article.PlaceholderImageURL(intN(100))
}
