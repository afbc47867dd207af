package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"
)

type StudentHandler struct {
	service service.StudentService
}

func NewStudentHandler(s service.StudentService) *StudentHandler {
	return &StudentHandler{service: s}
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListStudents")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	page, err := webutil.QueryPage(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ListStudents(r.Context(), tenantID, page)
	if err != nil {
		handleServiceError(w, logger, "Error listing students", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CreateStudent")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateStudentRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create student request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.CreateStudent(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error creating student", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "UpdateStudent")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateStudentRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update student request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.UpdateStudent(r.Context(), tenantID, userID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error updating student", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteStudent")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteStudent(r.Context(), tenantID, userID); err != nil {
		handleServiceError(w, logger, "Error deleting student", err)
		return
	}
	respondNoContent(w)
}
