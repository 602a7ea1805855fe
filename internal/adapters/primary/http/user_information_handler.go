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

const maxRecordsPerPage = 100

// UserInformationHandler handles HTTP requests for user_information records
type UserInformationHandler struct {
	service      ports.UserInformationService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewUserInformationHandler creates a new user information handler
func NewUserInformationHandler(
	service ports.UserInformationService,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *UserInformationHandler {
	return &UserInformationHandler{
		service:      service,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "user_information"),
	}
}

// RegisterRoutes sets up the routing for all user_information endpoints.
func (h *UserInformationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)

	r.Route("/{recordID}", func(r chi.Router) {
		r.Get("/", h.HandleGet)
		r.Put("/", h.HandleUpdate)
		r.Delete("/", h.HandleDelete)
	})
}

// --- Request/Response DTOs ---

// UserInformationRequest defines the expected JSON body for create and
// update. Update is a whole-record overwrite, so both share one shape.
type UserInformationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r *UserInformationRequest) toParams() domain.UserInformationParams {
	return domain.UserInformationParams{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// UserInformationDTO defines the JSON response for records.
type UserInformationDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserInformationDTO(record *domain.UserInformation) UserInformationDTO {
	return UserInformationDTO{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		Phone:     record.Phone,
		Address:   record.Address,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.Format(time.RFC3339),
	}
}

func toUserInformationDTOs(records []*domain.UserInformation) []UserInformationDTO {
	response := make([]UserInformationDTO, 0, len(records))
	for _, record := range records {
		response = append(response, toUserInformationDTO(record))
	}
	return response
}

// --- Handlers ---

// HandleList handles GET /user-information
func (h *UserInformationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pagination := validation.ParsePagination(r, maxRecordsPerPage)

	records, total, err := h.service.List(r.Context(), ports.ListParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WritePaginated(w, toUserInformationDTOs(records), pagination.Limit, pagination.Offset, total)
}

// HandleCreate handles POST /user-information
func (h *UserInformationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[UserInformationRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	record, err := h.service.Create(r.Context(), req.toParams())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("record created", "record_id", record.ID)

	WriteCreated(w, toUserInformationDTO(record), "User created successfully!")
}

// HandleGet handles GET /user-information/{recordID}, used by the edit
// screen to prefill the form.
func (h *UserInformationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.parseRecordID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	record, err := h.service.Get(r.Context(), recordID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toUserInformationDTO(record))
}

// HandleUpdate handles PUT /user-information/{recordID}
func (h *UserInformationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.parseRecordID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	req, err := validation.DecodeAndValidate[UserInformationRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	record, err := h.service.Update(r.Context(), recordID, req.toParams())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("record updated", "record_id", recordID)

	WriteSuccess(w, toUserInformationDTO(record), "User updated successfully!")
}

// HandleDelete handles DELETE /user-information/{recordID}. The confirmation
// prompt lives in the screen declaration; the server performs the delete
// unconditionally.
func (h *UserInformationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.parseRecordID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), recordID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("record deleted", "record_id", recordID)

	WriteSuccess(w, nil, "User deleted successfully!")
}

// parseRecordID extracts and validates the record ID from the URL
func (h *UserInformationHandler) parseRecordID(r *http.Request) (int64, error) {
	recordIDStr := chi.URLParam(r, "recordID")
	recordID, err := strconv.ParseInt(recordIDStr, 10, 64)
	if err != nil || recordID <= 0 {
		v := validation.NewValidator()
		v.Custom("recordID", false, "Invalid record ID")
		return 0, v.Errors()
	}
	return recordID, nil
}
