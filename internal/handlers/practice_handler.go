package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"
)

type PracticeHandler struct {
	service service.PracticeService
}

func NewPracticeHandler(s service.PracticeService) *PracticeHandler {
	return &PracticeHandler{service: s}
}

type successResponse struct {
	Success bool `json:"success"`
}

// SubmitResult は1単語の採点結果を受け取ります
func (h *PracticeHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "SubmitResult")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.SubmitResultRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid submit request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := resolveUserID(session, req.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.SubmitResult(r.Context(), tenantID, userID, &req); err != nil {
		handleServiceError(w, logger, "Error submitting result", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *PracticeHandler) ListWrongWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListWrongWords")

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
	page, err := webutil.QueryPage(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	timeFilter := r.URL.Query().Get("time_filter")
	switch timeFilter {
	case "", model.TimeFilterAll, model.TimeFilterToday, model.TimeFilterWeek:
	default:
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "time_filterはall / today / weekのいずれかです。", "time_filter", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.ListWrongWords(r.Context(), tenantID, model.WrongWordQuery{
		UserID:     userID,
		BookID:     bookID,
		TimeFilter: timeFilter,
		Page:       page,
	})
	if err != nil {
		handleServiceError(w, logger, "Error listing wrong words", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *PracticeHandler) ReviewWrongWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ReviewWrongWord")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	wordID, err := webutil.URLParamUint(r, "wordId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := queryUserID(r, session)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.ReviewWrongWord(r.Context(), tenantID, userID, wordID); err != nil {
		handleServiceError(w, logger, "Error reviewing wrong word", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, successResponse{Success: true})
}

// History は完了済みタスクを新しい順に返します。
// page/pageSize と offset/limit のどちらでも指定でき、管理者は user_id 省略で全生徒
func (h *PracticeHandler) History(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "History")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var filter model.HistoryFilter
	if session.IsStudent() {
		filter.UserID = session.UserID
	} else if filter.UserID, err = webutil.QueryUint(r, "user_id"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if filter.BookID, err = webutil.QueryUint(r, "book_id"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if r.URL.Query().Has("offset") || r.URL.Query().Has("limit") {
		if filter.Offset, err = webutil.QueryInt(r, "offset", 0); err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		if filter.Limit, err = webutil.QueryInt(r, "limit", model.DefaultPageSize); err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
	} else {
		page, err := webutil.QueryPage(r)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		filter.Offset, filter.Limit = page.Offset(), page.Limit()
	}

	resp, err := h.service.History(r.Context(), tenantID, filter)
	if err != nil {
		handleServiceError(w, logger, "Error listing history", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
