package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/library-api/internal/api/shared"
	"github.com/phrazzld/library-api/internal/domain"
	"github.com/phrazzld/library-api/internal/platform/logger"
	"github.com/phrazzld/library-api/internal/service"
	"github.com/phrazzld/library-api/internal/service/auth"
)

// CustomerHandler handles customer registration, login and maintenance.
type CustomerHandler struct {
	customerService service.CustomerService
	jwtService      auth.JWTService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(
	customerService service.CustomerService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *CustomerHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CustomerHandler")
	}

	return &CustomerHandler{
		customerService: customerService,
		jwtService:      jwtService,
		logger:          logger.With(slog.String("component", "customer_handler")),
	}
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.customerService.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("customer registered", slog.Int64("customer_id", profile.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, profile)
}

// List handles GET /customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.customerService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if profiles == nil {
		profiles = []domain.CustomerProfile{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profiles)
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	profile, err := h.customerService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Update handles PUT /customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	var req CustomerUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.customerService.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("customer updated", actorAttr(r), slog.Int64("customer_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Delete handles DELETE /customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("customer deleted", actorAttr(r), slog.Int64("customer_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// Login handles POST /login. A successful login returns a bearer token and
// the customer's profile.
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.customerService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// Failed logins log at WARN.
		HandleAPIError(w, r, err, shared.WithElevatedLogLevel())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), profile.ID, profile.Email)
	if err != nil {
		log.Error("failed to generate token", slog.Int64("customer_id", profile.ID))
		HandleAPIError(w, r, err)
		return
	}

	log.Info("customer logged in", slog.Int64("customer_id", profile.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Customer:  *profile,
	})
}
