package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TenantHandler はシステム管理者向けのテナント管理API
type TenantHandler struct {
	service service.TenantService
}

func NewTenantHandler(s service.TenantService) *TenantHandler {
	return &TenantHandler{service: s}
}

func tenantIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "テナントIDの形式が正しくありません。", "id", model.ErrInvalidInput)
	}
	return id, nil
}

func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListTenants")

	page, err := webutil.QueryPage(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	resp, err := h.service.ListTenants(r.Context(), page)
	if err != nil {
		handleServiceError(w, logger, "Error listing tenants", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateTenant はテナントと管理者アカウントを作成します
func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CreateTenant")

	var req model.CreateTenantRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create tenant request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CreateTenant(r.Context(), &req)
	if err != nil {
		handleServiceError(w, logger, "Error creating tenant", err)
		return
	}
	logger.Info("Tenant created successfully", "tenant_id", resp.Tenant.TenantID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetTenant")

	tenantID, err := tenantIDParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	tenant, err := h.service.GetTenant(r.Context(), tenantID)
	if err != nil {
		handleServiceError(w, logger, "Error getting tenant", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "UpdateTenant")

	tenantID, err := tenantIDParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateTenantRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update tenant request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	tenant, err := h.service.UpdateTenant(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error updating tenant", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteTenant")

	tenantID, err := tenantIDParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteTenant(r.Context(), tenantID); err != nil {
		handleServiceError(w, logger, "Error deleting tenant", err)
		return
	}
	respondNoContent(w)
}
