package handlers

import (
	"net/http"
	"strconv"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"
)

// maxImportFileBytes はインポートファイルのサイズ上限
const maxImportFileBytes = 32 << 20

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CreateWord")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateWordRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create word request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.CreateWord(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error creating word", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, word)
}

func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetWord")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	wordID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.GetWord(r.Context(), tenantID, wordID)
	if err != nil {
		handleServiceError(w, logger, "Error getting word", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word)
}

// ListWordsByBook は単語帳の単語を ID 昇順で返します
func (h *WordHandler) ListWordsByBook(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListWordsByBook")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	bookID, err := webutil.URLParamUint(r, "bookId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	page, err := webutil.QueryPage(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ListWordsByBook(r.Context(), tenantID, bookID, page)
	if err != nil {
		handleServiceError(w, logger, "Error listing words", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *WordHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "UpdateWord")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	wordID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateWordRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update word request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.UpdateWord(r.Context(), tenantID, wordID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error updating word", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word)
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteWord")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	wordID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteWord(r.Context(), tenantID, wordID); err != nil {
		handleServiceError(w, logger, "Error deleting word", err)
		return
	}
	respondNoContent(w)
}

// ImportWords は JSON の行配列を一括登録します
func (h *WordHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ImportWords")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.ImportWordsRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid import request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.ImportWords(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, logger, "Error importing words", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// ImportWordsFile は multipart の book_id と file (.xlsx / .csv) を受け取ります
func (h *WordHandler) ImportWordsFile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ImportWordsFile")

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportFileBytes)
	if err := r.ParseMultipartForm(maxImportFileBytes); err != nil {
		logger.Warn("Failed to parse multipart form", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "multipart/form-data で送信してください。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	bookID, err := strconv.ParseUint(r.FormValue("book_id"), 10, 64)
	if err != nil || bookID == 0 {
		appErr := model.NewAppError("VALIDATION_ERROR", "book_idの形式が正しくありません。", "book_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "fileは必須です。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	result, err := h.service.ImportWordsFile(r.Context(), tenantID, uint(bookID), header.Filename, file)
	if err != nil {
		handleServiceError(w, logger, "Error importing word file", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}
