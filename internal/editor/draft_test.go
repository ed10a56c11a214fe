package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsflow/internal/article"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) GenerateArticleBody(ctx context.Context, title, category string) string {
	return m.Called(ctx, title, category).String(0)
}

func (m *MockWriter) GenerateSummary(ctx context.Context, content string) string {
	return m.Called(ctx, content).String(0)
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, article.Technology, d.Category)
	assert.Equal(t, article.StatusDraft, d.Status)
	assert.Empty(t, d.ID)
	assert.Empty(t, d.Title)
}

func TestDraftFromAndPatchRoundTripThroughStore(t *testing.T) {
	created := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	store := article.NewStore(article.WithSeed([]article.Article{{
		ID: "1", Title: "Old", Category: article.Business, Author: "Jane",
		CreatedAt: created, Status: article.StatusPublished, ImageURL: "img",
	}}))

	a, ok := store.GetByID("1")
	require.True(t, ok)

	d := DraftFrom(a)
	d.Title = "New"
	saved, err := store.Save(d.Patch())
	require.NoError(t, err)

	assert.Equal(t, "New", saved.Title)
	assert.Equal(t, "Jane", saved.Author)
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, article.StatusPublished, saved.Status)
}

func TestNewDraftSavesAsCreate(t *testing.T) {
	store := article.NewStore(article.WithIDFunc(func() string { return "x" }))

	d := NewDraft()
	d.Title = "Fresh"
	saved, err := store.Save(d.Patch())
	require.NoError(t, err)

	assert.Equal(t, "x", saved.ID)
	assert.Equal(t, article.DefaultAuthor, saved.Author)
	assert.NotEmpty(t, saved.ImageURL)
	assert.Equal(t, 1, store.Len())
}

func TestAutoWrite_RequiresTitle(t *testing.T) {
	w := &MockWriter{}
	d := NewDraft()
	d.Content = "keep"

	got, err := AutoWrite(context.Background(), w, d)

	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Equal(t, "keep", got.Content)
	w.AssertNotCalled(t, "GenerateArticleBody", mock.Anything, mock.Anything, mock.Anything)
}

func TestAutoWrite_FillsContentThenExcerpt(t *testing.T) {
	w := &MockWriter{}
	w.On("GenerateArticleBody", mock.Anything, "Mars", "Science").Return("Body text").Once()
	w.On("GenerateSummary", mock.Anything, "Body text").Return("Short.").Once()

	d := NewDraft()
	d.Title = "Mars"
	d.Category = article.Science

	got, err := AutoWrite(context.Background(), w, d)
	require.NoError(t, err)

	assert.Equal(t, "Body text", got.Content)
	assert.Equal(t, "Short.", got.Excerpt)
	assert.Empty(t, d.Content)
	w.AssertExpectations(t)
}

func TestRandomImageURL(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/800/600?random=42", RandomImageURL(func(n int) int {
		assert.Equal(t, 100, n)
		return 42
	}))
}
