package domain

// Category groups books. BookCount is computed on every read and is not
// persisted.
type Category struct {
	ID          int64  `db:"id"          json:"id"`
	Name        string `db:"name"        json:"name"`
	Description string `db:"description" json:"description"`
	BookCount   int64  `db:"book_count"  json:"bookCount"`
}

// CategoryCreate carries the fields needed to create a category.
type CategoryCreate struct {
	Name        string
	Description string
}

// CategoryUpdate is a partial update; nil fields are left unchanged.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// ApplyTo merges the provided fields into c.
func (u CategoryUpdate) ApplyTo(c *Category) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
}
