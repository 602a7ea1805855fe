package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/backoffice-backend/internal/adapters/primary/screens"
	apperrors "github.com/lorrc/backoffice-backend/internal/core/errors"
)

// ScreenHandler serves the presentation declarations consumed by the UI
// rendering collaborator.
type ScreenHandler struct {
	definitions  map[string]screens.Screen
	errorHandler *ErrorHandler
}

// NewScreenHandler creates a new screen handler
func NewScreenHandler(errorHandler *ErrorHandler) *ScreenHandler {
	return &ScreenHandler{
		definitions:  screens.Definitions(),
		errorHandler: errorHandler,
	}
}

// RegisterRoutes sets up the routing for the screen endpoints.
func (h *ScreenHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListScreens)
	r.Get("/{screenID}", h.HandleGetScreen)
}

// ScreenListResponse lists the declared screen names.
type ScreenListResponse struct {
	Screens []string `json:"screens"`
}

// HandleListScreens handles GET /screens
func (h *ScreenHandler) HandleListScreens(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, ScreenListResponse{Screens: screens.Names()})
}

// HandleGetScreen handles GET /screens/{screenID}
func (h *ScreenHandler) HandleGetScreen(w http.ResponseWriter, r *http.Request) {
	screenID := chi.URLParam(r, "screenID")

	screen, ok := h.definitions[screenID]
	if !ok {
		h.errorHandler.Handle(w, r, apperrors.NewNotFoundError(apperrors.ErrNotFound, "Screen not found"))
		return
	}

	WriteJSON(w, http.StatusOK, screen)
}
