package api

import (
	"net/http"

	"github.com/phrazzld/library-api/internal/api/shared"
	"github.com/phrazzld/library-api/internal/domain"
)

// MapErrorToStatusCode maps an error to its HTTP status code using the
// domain error taxonomy. Unclassified errors are 500s.
func MapErrorToStatusCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Raw error
// text of unclassified errors is never returned.
func GetSafeErrorMessage(err error) string {
	if domain.KindOf(err) == domain.KindInternal {
		return domain.MsgInternalServerError
	}
	if msg := domain.MessageOf(err); msg != "" {
		return msg
	}
	return domain.MsgInternalServerError
}

// HandleAPIError writes the JSON error response for err. Classified errors
// are logged at DEBUG unless opts elevate them; everything else is logged at
// ERROR with the error text redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, opts ...shared.ResponseOption) {
	kind := domain.KindOf(err)
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		kind.Code(),
		GetSafeErrorMessage(err),
		err,
		opts...)
}
