package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// DashboardStats はテナント管理者ダッシュボードの集計
func (h *StatsHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DashboardStats")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.DashboardStats(r.Context(), tenantID)
	if err != nil {
		handleServiceError(w, logger, "Error getting dashboard stats", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "UserStats")

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
	bookID, err := webutil.QueryUint(r, "book_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.UserStats(r.Context(), tenantID, userID, bookID)
	if err != nil {
		handleServiceError(w, logger, "Error getting user stats", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

// Calendar は year / month の日別完了タスク数。省略時は当月
func (h *StatsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Calendar")

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
	year, err := webutil.QueryInt(r, "year", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	month, err := webutil.QueryInt(r, "month", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Calendar(r.Context(), tenantID, userID, year, month)
	if err != nil {
		handleServiceError(w, logger, "Error getting calendar", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
