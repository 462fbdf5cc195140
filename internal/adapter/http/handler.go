package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/k23002/gacha-simulator/internal/core/gacha"
	"github.com/k23002/gacha-simulator/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a GachaUseCase to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.GachaUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The user
// identity comes from the X-User-ID header, supplied by the identity
// layer in front of this service; it is trusted as-is.
func NewHandler(svc port.GachaUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/gacha", func(r chi.Router) {
			r.Get("/", h.handleListGachas)
			r.Post("/", h.handleCreateGacha)
			r.Get("/{id}", h.handleGetGacha)
			r.Put("/{id}", h.handleUpdateGacha)
			r.Delete("/{id}", h.handleDeleteGacha)
			r.Post("/{id}/pull", h.handlePull)
		})
		r.Route("/characters", func(r chi.Router) {
			r.Get("/", h.handleListCharacters)
			r.Post("/", h.handleCreateCharacter)
			r.Get("/{id}", h.handleGetCharacter)
			r.Put("/{id}", h.handleUpdateCharacter)
			r.Delete("/{id}", h.handleDeleteCharacter)
		})
		r.Get("/collection", h.handleCollection)
		r.Get("/history", h.handleHistory)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors to HTTP statuses: validation and usage
// errors are the client's to fix, transient apply failures ask for a
// retry, everything else is internal.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrGachaNotFound), errors.Is(err, port.ErrCharacterNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrGachaInactive),
		errors.Is(err, port.ErrPullCountNotAllowed),
		errors.Is(err, port.ErrInvalidToken),
		errors.Is(err, port.ErrPoolCharacterUnknown),
		errors.Is(err, port.ErrPoolRarityMismatch),
		errors.Is(err, gacha.ErrInvalidRate),
		errors.Is(err, gacha.ErrRateSumMismatch),
		errors.Is(err, gacha.ErrOrphanPoolEntry),
		errors.Is(err, gacha.ErrEmptyTierPool),
		errors.Is(err, gacha.ErrDuplicatePoolEntry):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrApplyConflict), errors.Is(err, port.ErrApplyTimeout):
		http.Error(w, "temporary failure, retry with the same token", http.StatusConflict)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// userID extracts the trusted identity header; empty means the caller
// skipped the identity layer.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}
