package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/redact"
	"github.com/phrazzld/library-api/internal/store"
)

// classify converts a store failure into a client-safe *domain.Error. Errors
// that are already classified pass through unchanged; anything else is
// wrapped with the failed operation and surfaces as an internal error.
func classify(err error, operation string) error {
	if err == nil {
		return nil
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return err
	}

	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		return domain.NewNotFoundError(domain.MsgCustomerNotFound).WithCause(err)
	case errors.Is(err, store.ErrCategoryNotFound):
		return domain.NewNotFoundError(domain.MsgCategoryNotFound).WithCause(err)
	case errors.Is(err, store.ErrBookNotFound):
		return domain.NewNotFoundError(domain.MsgBookNotFound).WithCause(err)
	case errors.Is(err, store.ErrEmailExists):
		return domain.NewConflictError(domain.MsgEmailExists).WithCause(err)
	case errors.Is(err, store.ErrUnknownCategory):
		return domain.NewValidationError(domain.MsgCategoryDoesNotExist).WithCause(err)
	case errors.Is(err, store.ErrCategoryInUse):
		return domain.NewConflictError(domain.MsgCategoryHasBooks).WithCause(err)
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// logClassified logs expected business failures at DEBUG and unexpected ones
// at ERROR.
func logClassified(logger *slog.Logger, msg string, err error, args ...any) {
	args = append(args, redact.Attr(err))
	if domain.KindOf(err) == domain.KindInternal {
		logger.Error(msg, args...)
		return
	}
	logger.Debug(msg, args...)
}
