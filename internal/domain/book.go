package domain

// Book is a catalogue entry. CategoryName is filled in by read paths only
// and is omitted from create and update responses.
type Book struct {
	ID             int64  `db:"id"              json:"id"`
	Title          string `db:"title"           json:"title"`
	Author         string `db:"author"          json:"author"`
	Publisher      string `db:"publisher"       json:"publisher"`
	PublishingYear int    `db:"publishing_year" json:"publishingYear"`
	CategoryID     int64  `db:"category_id"     json:"categoryId"`
	CategoryName   string `db:"category_name"   json:"categoryName,omitempty"`
}

// BookCreate carries the fields needed to create a book.
type BookCreate struct {
	Title          string
	Author         string
	Publisher      string
	PublishingYear int
	CategoryID     int64
}

// BookUpdate is a partial update; nil fields are left unchanged.
type BookUpdate struct {
	Title          *string
	Author         *string
	Publisher      *string
	PublishingYear *int
	CategoryID     *int64
}

// ChangesCategory reports whether the update supplies a category id that
// differs from current.
func (u BookUpdate) ChangesCategory(current int64) bool {
	return u.CategoryID != nil && *u.CategoryID != current
}

// ApplyTo merges the provided fields into b.
func (u BookUpdate) ApplyTo(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Publisher != nil {
		b.Publisher = *u.Publisher
	}
	if u.PublishingYear != nil {
		b.PublishingYear = *u.PublishingYear
	}
	if u.CategoryID != nil {
		b.CategoryID = *u.CategoryID
	}
}
