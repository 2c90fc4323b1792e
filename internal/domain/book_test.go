package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookUpdateApplyTo(t *testing.T) {
	title := "New Title"
	year := 2001
	b := &Book{ID: 3, Title: "Old", Author: "A", Publisher: "P", PublishingYear: 1999, CategoryID: 2}

	BookUpdate{Title: &title, PublishingYear: &year}.ApplyTo(b)

	assert.Equal(t, Book{ID: 3, Title: "New Title", Author: "A", Publisher: "P", PublishingYear: 2001, CategoryID: 2}, *b)
}

func TestBookUpdateChangesCategory(t *testing.T) {
	same := int64(2)
	other := int64(5)

	assert.False(t, BookUpdate{}.ChangesCategory(2))
	assert.False(t, BookUpdate{CategoryID: &same}.ChangesCategory(2))
	assert.True(t, BookUpdate{CategoryID: &other}.ChangesCategory(2))
}

func TestCategoryUpdateApplyTo(t *testing.T) {
	desc := "updated"
	c := &Category{ID: 1, Name: "Fiction", Description: "old", BookCount: 4}

	CategoryUpdate{Description: &desc}.ApplyTo(c)

	assert.Equal(t, Category{ID: 1, Name: "Fiction", Description: "updated", BookCount: 4}, *c)
}
