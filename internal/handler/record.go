package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tinyrecords/tinyrecords-go/internal/middleware"
	"github.com/tinyrecords/tinyrecords-go/internal/model"
	"github.com/tinyrecords/tinyrecords-go/internal/service"
)

// RecordHandler handles HTTP requests for record operations.
type RecordHandler struct {
	service *service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(svc *service.RecordService) *RecordHandler {
	return &RecordHandler{service: svc}
}

// HandleListRecords handles GET /api/records requests.
func (h *RecordHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.UserEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	records, err := h.service.ListRecords(r.Context(), email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// HandleCreateRecord handles POST /api/records requests.
func (h *RecordHandler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.UserEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	// A malformed body decodes to an empty title, which fails the length
	// check the same way a missing title does.
	var req model.CreateRecordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	record, err := h.service.CreateRecord(r.Context(), email, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse("title_too_short"))
		case errors.Is(err, service.ErrInvalidPriority):
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid_priority"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, record)
}
