package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"
)

type BookHandler struct {
	service service.BookService
}

func NewBookHandler(s service.BookService) *BookHandler {
	return &BookHandler{service: s}
}

// ListBooks は単語帳一覧。生徒には公開中の単語帳だけを返します
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListBooks")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	page, err := webutil.QueryPage(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	filter := model.BookFilter{Status: r.URL.Query().Get("status"), Page: page}
	if session.IsStudent() {
		filter.Status = model.BookStatusOnline
	}
	if filter.Status != "" && filter.Status != model.BookStatusOnline && filter.Status != model.BookStatusOffline {
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "statusはonlineまたはofflineを指定してください。", "status", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.ListBooks(r.Context(), tenantID, filter)
	if err != nil {
		handleServiceError(w, logger, "Error listing books", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetBook")

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

	book, err := h.service.GetBook(r.Context(), tenantID, bookID)
	if err != nil {
		handleServiceError(w, logger, "Error getting book", err)
		return
	}
	if session.IsStudent() && book.Status != model.BookStatusOnline {
		appErr := model.NewAppError("BOOK_NOT_FOUND", "単語帳が見つかりません。", "", model.ErrNotFound)
		webutil.HandleError(w, logger, appErr)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, book)
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CreateBook")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateBookRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create book request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	book, err := h.service.CreateBook(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error creating book", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "UpdateBook")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	bookID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateBookRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update book request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	book, err := h.service.UpdateBook(r.Context(), tenantID, bookID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error updating book", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, book)
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteBook")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	bookID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteBook(r.Context(), tenantID, bookID); err != nil {
		handleServiceError(w, logger, "Error deleting book", err)
		return
	}
	respondNoContent(w)
}

// RefreshWordCount は word_count を実際の単語数で再計算します
func (h *BookHandler) RefreshWordCount(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "RefreshWordCount")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	bookID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	book, err := h.service.RefreshWordCount(r.Context(), tenantID, bookID)
	if err != nil {
		handleServiceError(w, logger, "Error refreshing word count", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, book)
}
