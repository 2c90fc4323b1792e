package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/library-api/internal/api/shared"
	"github.com/phrazzld/library-api/internal/domain"
)

// getPathID parses a base-10 integer path parameter. Anything else is a
// validation error with the message "Invalid ID".
func getPathID(r *http.Request, paramName string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(domain.MsgInvalidID).WithCause(err)
	}
	return id, nil
}

// handlePathID extracts the {id} path parameter, writing the error response
// itself when the value is not an integer.
func handlePathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it. On
// failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError(domain.MsgInvalidRequestBody).WithCause(err))
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError(shared.SanitizeValidationError(err)).WithCause(err))
		return false
	}
	return true
}

// actorAttr identifies the authenticated caller on audit log lines.
func actorAttr(r *http.Request) slog.Attr {
	if claims, ok := shared.ClaimsFromContext(r.Context()); ok {
		return slog.Int64("actor_id", claims.CustomerID)
	}
	return slog.String("actor_id", "anonymous")
}
