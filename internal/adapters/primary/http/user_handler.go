package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/backoffice-backend/internal/adapters/primary/validation"
	"github.com/lorrc/backoffice-backend/internal/core/domain"
	"github.com/lorrc/backoffice-backend/internal/core/ports"
)

// UserHandler handles HTTP requests for the simpler users table, the
// alternate configuration of the record-management workflow.
type UserHandler struct {
	service      ports.UserService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	service ports.UserService,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		service:      service,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "user"),
	}
}

// RegisterRoutes sets up the routing for all user endpoints.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)

	r.Route("/{userID}", func(r chi.Router) {
		r.Get("/", h.HandleGet)
		r.Put("/", h.HandleUpdate)
		r.Delete("/", h.HandleDelete)
	})
}

// UserRequest defines the expected JSON body for create and update.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserRequest) toParams() domain.UserParams {
	return domain.UserParams{Name: r.Name, Email: r.Email}
}

// UserDTO defines the JSON response for users.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []*domain.User) []UserDTO {
	response := make([]UserDTO, 0, len(users))
	for _, user := range users {
		response = append(response, toUserDTO(user))
	}
	return response
}

// HandleList handles GET /users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pagination := validation.ParsePagination(r, maxRecordsPerPage)

	users, total, err := h.service.List(r.Context(), ports.ListParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WritePaginated(w, toUserDTOs(users), pagination.Limit, pagination.Offset, total)
}

// HandleCreate handles POST /users
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[UserRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	user, err := h.service.Create(r.Context(), req.toParams())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("user created", "user_id", user.ID)

	WriteCreated(w, toUserDTO(user), "User created successfully!")
}

// HandleGet handles GET /users/{userID}, the async prefill for the edit
// modal.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := h.parseUserID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleUpdate handles PUT /users/{userID}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := h.parseUserID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	req, err := validation.DecodeAndValidate[UserRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	user, err := h.service.Update(r.Context(), userID, req.toParams())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("user updated", "user_id", userID)

	WriteSuccess(w, toUserDTO(user), "User updated successfully!")
}

// HandleDelete handles DELETE /users/{userID}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, err := h.parseUserID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("user deleted", "user_id", userID)

	WriteSuccess(w, nil, "User deleted successfully!")
}

// parseUserID extracts and validates the user ID from the URL
func (h *UserHandler) parseUserID(r *http.Request) (int64, error) {
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		v := validation.NewValidator()
		v.Custom("userID", false, "Invalid user ID")
		return 0, v.Errors()
	}
	return userID, nil
}
