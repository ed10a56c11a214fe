package article

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	Technology Category = "Technology"
	Business   Category = "Business"
	Politics   Category = "Politics"
	Sports     Category = "Sports"
	Lifestyle  Category = "Lifestyle"
	Science    Category = "Science"
)

// AllCategories is the query sentinel that disables category filtering.
const AllCategories = "All"

const DefaultCategory = Technology

// Categories is the closed set, in display order.
var Categories = []Category{Technology, Business, Politics, Sports, Lifestyle, Science}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

const (
	DefaultTitle  = "Untitled"
	DefaultAuthor = "Admin User"
)

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	Author    string    `json:"author"`
	ImageURL  string    `json:"imageUrl"`
	Views     int64     `json:"views"`
	Reactions int64     `json:"reactions"`
	CreatedAt time.Time `json:"createdAt"`
	Status    Status    `json:"status"`
}

// Paragraphs splits Content into the maximal non-empty runs between newlines.
func (a Article) Paragraphs() []string {
	lines := strings.Split(a.Content, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Patch is a partial Article. Nil fields are left untouched on update and
// defaulted on create. An empty ID means "create".
type Patch struct {
	ID       string    `json:"id,omitempty"`
	Title    *string   `json:"title,omitempty"`
	Excerpt  *string   `json:"excerpt,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Category *Category `json:"category,omitempty"`
	Author   *string   `json:"author,omitempty"`
	ImageURL *string   `json:"imageUrl,omitempty"`
	Status   *Status   `json:"status,omitempty"`
}

func (p Patch) apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

type AnalyticsPoint struct {
	Date      string `json:"date"`
	Views     int64  `json:"views"`
	Reactions int64  `json:"reactions"`
}

type CategoryStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PlaceholderImageURL is the image used when an article is created without one.
func PlaceholderImageURL(n int) string {
	return fmt.Sprintf("https://picsum.photos/800/600?random=%d", n)
}
