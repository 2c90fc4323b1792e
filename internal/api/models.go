package api

import (
	"time"

	"github.com/phrazzld/library-api/internal/domain"
)

// CustomerCreateRequest is the registration payload.
type CustomerCreateRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ToDomain converts the request to the service input.
func (req CustomerCreateRequest) ToDomain() domain.CustomerCreate {
	return domain.CustomerCreate{Name: req.Name, Email: req.Email, Password: req.Password}
}

// CustomerUpdateRequest is a partial customer update; omitted fields are
// left unchanged.
type CustomerUpdateRequest struct {
	Name     *string `json:"name"     validate:"omitnil,min=1"`
	Email    *string `json:"email"    validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=8,max=72"`
}

// ToDomain converts the request to the service input.
func (req CustomerUpdateRequest) ToDomain() domain.CustomerUpdate {
	return domain.CustomerUpdate{Name: req.Name, Email: req.Email, Password: req.Password}
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the bearer token for protected routes.
	Token string `json:"token"`

	// ExpiresAt is when Token stops being accepted.
	ExpiresAt time.Time `json:"expiresAt"`

	Customer domain.CustomerProfile `json:"customer"`
}

// CategoryCreateRequest is the payload for creating a category.
type CategoryCreateRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ToDomain converts the request to the service input.
func (req CategoryCreateRequest) ToDomain() domain.CategoryCreate {
	return domain.CategoryCreate{Name: req.Name, Description: req.Description}
}

// CategoryUpdateRequest is a partial category update.
type CategoryUpdateRequest struct {
	Name        *string `json:"name"        validate:"omitnil,min=1"`
	Description *string `json:"description"`
}

// ToDomain converts the request to the service input.
func (req CategoryUpdateRequest) ToDomain() domain.CategoryUpdate {
	return domain.CategoryUpdate{Name: req.Name, Description: req.Description}
}

// BookCreateRequest is the payload for creating a book. PublishingYear is a
// pointer so that an explicit 0 passes while an absent year is rejected.
type BookCreateRequest struct {
	Title          string `json:"title"          validate:"required"`
	Author         string `json:"author"         validate:"required"`
	Publisher      string `json:"publisher"      validate:"required"`
	PublishingYear *int   `json:"publishingYear" validate:"required"`
	CategoryID     int64  `json:"categoryId"     validate:"required,gt=0"`
}

// ToDomain converts the request to the service input.
func (req BookCreateRequest) ToDomain() domain.BookCreate {
	return domain.BookCreate{
		Title:          req.Title,
		Author:         req.Author,
		Publisher:      req.Publisher,
		PublishingYear: *req.PublishingYear,
		CategoryID:     req.CategoryID,
	}
}

// BookUpdateRequest is a partial book update.
type BookUpdateRequest struct {
	Title          *string `json:"title"          validate:"omitnil,min=1"`
	Author         *string `json:"author"         validate:"omitnil,min=1"`
	Publisher      *string `json:"publisher"      validate:"omitnil,min=1"`
	PublishingYear *int    `json:"publishingYear"`
	CategoryID     *int64  `json:"categoryId"     validate:"omitnil,gt=0"`
}

// ToDomain converts the request to the service input.
func (req BookUpdateRequest) ToDomain() domain.BookUpdate {
	return domain.BookUpdate{
		Title:          req.Title,
		Author:         req.Author,
		Publisher:      req.Publisher,
		PublishingYear: req.PublishingYear,
		CategoryID:     req.CategoryID,
	}
}
