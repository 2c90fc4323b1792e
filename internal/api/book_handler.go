package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/library-api/internal/api/shared"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/platform/logger"
	"github.com/phrazzld/library-api/internal/service"
)

// BookHandler handles book HTTP requests
type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}

	return &BookHandler{
		bookService: bookService,
		logger:      logger.With(slog.String("component", "book_handler")),
	}
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	book, err := h.bookService.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("book created",
		actorAttr(r),
		slog.Int64("book_id", book.ID),
		slog.Int64("category_id", book.CategoryID))
	shared.RespondWithJSON(w, r, http.StatusCreated, book)
}

// List handles GET /books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// Get handles GET /books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	book, err := h.bookService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// Update handles PUT /books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	var req BookUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	book, err := h.bookService.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("book updated", actorAttr(r), slog.Int64("book_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// Delete handles DELETE /books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	if err := h.bookService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("book deleted", actorAttr(r), slog.Int64("book_id", id))
	w.WriteHeader(http.StatusNoContent)
}
