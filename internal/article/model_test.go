package article

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraphs(t *testing.T) {
	a := Article{Content: "First line\n\nSecond line\n   \nThird"}
	assert.Equal(t, []string{"First line", "Second line", "Third"}, a.Paragraphs())

	assert.Empty(t, Article{}.Paragraphs())
}

func TestParagraphsCRLF(t *testing.T) {
	a := Article{Content: "One.\r\n\r\nTwo.\r\n"}
	assert.Equal(t, []string{"One.", "Two."}, a.Paragraphs())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Science")
	require.NoError(t, err)
	assert.Equal(t, Science, c)

	_, err = ParseCategory("science")
	assert.Error(t, err)
	_, err = ParseCategory(AllCategories)
	assert.Error(t, err)
}

func TestPatchJSONDistinguishesAbsentFromEmpty(t *testing.T) {
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","excerpt":"","imageUrl":"x"}`), &p))

	assert.Equal(t, "1", p.ID)
	assert.Nil(t, p.Title)
	require.NotNil(t, p.Excerpt)
	assert.Equal(t, "", *p.Excerpt)
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "x", *p.ImageURL)
}
