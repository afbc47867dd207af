package handlers

import (
	"context"
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"

	"github.com/google/uuid"
)

type PlanHandler struct {
	service service.PlanService
}

func NewPlanHandler(s service.PlanService) *PlanHandler {
	return &PlanHandler{service: s}
}

type planListResponse struct {
	Data []*model.PlanSummary `json:"data"`
}

func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListPlans")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := queryUserID(r, session)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	plans, err := h.service.ListPlans(r.Context(), tenantID, userID)
	if err != nil {
		handleServiceError(w, logger, "Error listing plans", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, planListResponse{Data: plans})
}

func (h *PlanHandler) GetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetCurrentPlan")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := queryUserID(r, session)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GetCurrentPlan(r.Context(), tenantID, userID)
	if err != nil {
		handleServiceError(w, logger, "Error getting current plan", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *PlanHandler) GetPlanStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetPlanStats")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	bookID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := queryUserID(r, session)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetPlanStats(r.Context(), tenantID, userID, bookID)
	if err != nil {
		handleServiceError(w, logger, "Error getting plan stats", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

type planTransition func(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error)

// transition は start / pause / complete の共通処理
func (h *PlanHandler) transition(name string, fn planTransition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLogger(r.Context()).With("handler", name)

		tenantID, session, err := requestScope(r)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		bookID, err := webutil.URLParamUint(r, "id")
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		userID, err := queryUserID(r, session)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}

		plan, err := fn(r.Context(), tenantID, userID, bookID)
		if err != nil {
			handleServiceError(w, logger, "Error changing plan status", err)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, plan)
	}
}

func (h *PlanHandler) StartPlan(w http.ResponseWriter, r *http.Request) {
	h.transition("StartPlan", h.service.StartPlan)(w, r)
}

func (h *PlanHandler) PausePlan(w http.ResponseWriter, r *http.Request) {
	h.transition("PausePlan", h.service.PausePlan)(w, r)
}

func (h *PlanHandler) CompletePlan(w http.ResponseWriter, r *http.Request) {
	h.transition("CompletePlan", h.service.CompletePlan)(w, r)
}

func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeletePlan")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	planID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeletePlan(r.Context(), tenantID, planID, ownerID(session)); err != nil {
		handleServiceError(w, logger, "Error deleting plan", err)
		return
	}
	respondNoContent(w)
}
