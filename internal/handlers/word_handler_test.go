// internal/handlers/word_handler_test.go
package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_vocab_drill/internal/handlers"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWordRouter(s *mocks.WordService) *chi.Mux {
	h := handlers.NewWordHandler(s)
	return newDevRouter(func(r chi.Router) {
		r.Get("/api/v1/words/book/{bookId}", h.ListWordsByBook)
		r.Get("/api/v1/words/{id}", h.GetWord)
		r.Post("/api/v1/words", h.CreateWord)
		r.Post("/api/v1/words/import", h.ImportWords)
		r.Post("/api/v1/words/import/file", h.ImportWordsFile)
		r.Put("/api/v1/words/{id}", h.UpdateWord)
		r.Delete("/api/v1/words/{id}", h.DeleteWord)
	})
}

func TestWordHandler_CreateWord(t *testing.T) {
	tenantID := uuid.New()
	validReq := model.CreateWordRequest{BookID: 2, Spelling: "apple", Meaning: "りんご"}

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(s *mocks.WordService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系: 作成",
			body: validReq,
			setupMock: func(s *mocks.WordService) {
				s.On("CreateWord", mock.Anything, tenantID, &validReq).
					Return(&model.Word{ID: 1, BookID: 2, Spelling: "apple", Meaning: "りんご"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "異常系: 綴りなし",
			body:       model.CreateWordRequest{BookID: 2, Meaning: "りんご"},
			setupMock:  func(s *mocks.WordService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "異常系: 難易度が範囲外",
			body:       model.CreateWordRequest{BookID: 2, Spelling: "apple", Meaning: "りんご", Difficulty: 9},
			setupMock:  func(s *mocks.WordService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 単語帳が存在しない",
			body: validReq,
			setupMock: func(s *mocks.WordService) {
				s.On("CreateWord", mock.Anything, tenantID, &validReq).
					Return(nil, model.NewAppError("BOOK_NOT_FOUND", "単語帳が見つかりません。", "", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "BOOK_NOT_FOUND",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mocks.NewWordService(t)
			tt.setupMock(s)

			rr := sendRequest(t, newWordRouter(s), http.MethodPost, "/api/v1/words", tt.body, adminHeaders(tenantID))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rr))
				return
			}
			got := decodeBody[model.Word](t, rr)
			assert.Equal(t, "apple", got.Spelling)
		})
	}
}

func TestWordHandler_CRUD(t *testing.T) {
	tenantID := uuid.New()

	s := mocks.NewWordService(t)
	s.On("GetWord", mock.Anything, tenantID, uint(1)).Return(&model.Word{ID: 1, Spelling: "apple"}, nil).Once()
	s.On("ListWordsByBook", mock.Anything, tenantID, uint(2), model.Page{Page: 2, PageSize: 50}).
		Return(&model.ListResponse[*model.Word]{Data: []*model.Word{{ID: 51}}, Total: 51}, nil).Once()
	s.On("UpdateWord", mock.Anything, tenantID, uint(1), mock.MatchedBy(func(req *model.UpdateWordRequest) bool {
		return req.Meaning != nil && *req.Meaning == "林檎" && req.Spelling == nil
	})).Return(&model.Word{ID: 1, Spelling: "apple", Meaning: "林檎"}, nil).Once()
	s.On("DeleteWord", mock.Anything, tenantID, uint(1)).Return(nil).Once()
	s.On("DeleteWord", mock.Anything, tenantID, uint(2)).
		Return(model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "", model.ErrNotFound)).Once()
	router := newWordRouter(s)

	rr := sendRequest(t, router, http.MethodGet, "/api/v1/words/1", nil, adminHeaders(tenantID))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = sendRequest(t, router, http.MethodGet, "/api/v1/words/book/2?page=2&pageSize=50", nil, studentHeaders(tenantID, 7))
	assert.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody[model.ListResponse[*model.Word]](t, rr)
	assert.Equal(t, int64(51), list.Total)

	rr = sendRequest(t, router, http.MethodPut, "/api/v1/words/1", `{"meaning":"林檎"}`, adminHeaders(tenantID))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "林檎", decodeBody[model.Word](t, rr).Meaning)

	rr = sendRequest(t, router, http.MethodDelete, "/api/v1/words/1", nil, adminHeaders(tenantID))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = sendRequest(t, router, http.MethodDelete, "/api/v1/words/2", nil, adminHeaders(tenantID))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWordHandler_ImportWords(t *testing.T) {
	tenantID := uuid.New()

	s := mocks.NewWordService(t)
	s.On("ImportWords", mock.Anything, tenantID, mock.MatchedBy(func(req *model.ImportWordsRequest) bool {
		return req.BookID == 2 && len(req.Words) == 2
	})).Return(&model.ImportResult{Imported: 1, Failed: 1}, nil).Once()
	router := newWordRouter(s)

	body := `{"book_id":2,"words":[{"spelling":"apple","meaning":"りんご"},{"spelling":"","meaning":""}]}`
	rr := sendRequest(t, router, http.MethodPost, "/api/v1/words/import", body, adminHeaders(tenantID))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"imported":1,"failed":1}`, rr.Body.String())

	rr = sendRequest(t, router, http.MethodPost, "/api/v1/words/import", `{"book_id":2,"words":[]}`, adminHeaders(tenantID))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestWordHandler_ImportWordsFile(t *testing.T) {
	tenantID := uuid.New()
	csvContent := []byte("spelling,meaning\napple,りんご\norange,オレンジ\n")

	tests := []struct {
		name       string
		fields     map[string]string
		filename   string
		setupMock  func(s *mocks.WordService)
		wantStatus int
		wantField  string
	}{
		{
			name:     "正常系: CSVを取り込む",
			fields:   map[string]string{"book_id": "2"},
			filename: "words.csv",
			setupMock: func(s *mocks.WordService) {
				s.On("ImportWordsFile", mock.Anything, tenantID, uint(2), "words.csv", mock.Anything).
					Run(func(args mock.Arguments) {
						got, err := io.ReadAll(args.Get(4).(io.Reader))
						require.NoError(t, err)
						assert.Equal(t, csvContent, got)
					}).
					Return(&model.ImportResult{Imported: 2}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: book_id が不正",
			fields:     map[string]string{"book_id": "x"},
			filename:   "words.csv",
			setupMock:  func(s *mocks.WordService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "book_id",
		},
		{
			name:       "異常系: ファイルなし",
			fields:     map[string]string{"book_id": "2"},
			setupMock:  func(s *mocks.WordService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "file",
		},
		{
			name:     "異常系: 未対応の拡張子",
			fields:   map[string]string{"book_id": "2"},
			filename: "words.txt",
			setupMock: func(s *mocks.WordService) {
				s.On("ImportWordsFile", mock.Anything, tenantID, uint(2), "words.txt", mock.Anything).
					Return(nil, model.NewAppError("UNSUPPORTED_FILE_TYPE", "xlsx または csv を指定してください。", "file", model.ErrInvalidInput)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantField:  "file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mocks.NewWordService(t)
			tt.setupMock(s)

			body, contentType := multipartBody(t, tt.fields, tt.filename, csvContent)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/words/import/file", body)
			req.Header.Set("Content-Type", contentType)
			for k, v := range adminHeaders(tenantID) {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			newWordRouter(s).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, decodeBody[model.APIErrorResponse](t, rr).Error.Field)
				return
			}
			assert.JSONEq(t, `{"imported":2,"failed":0}`, rr.Body.String())
		})
	}
}

func TestWordHandler_ImportWordsFile_NotMultipart(t *testing.T) {
	s := mocks.NewWordService(t)
	rr := sendRequest(t, newWordRouter(s), http.MethodPost, "/api/v1/words/import/file", `{"book_id":2}`, adminHeaders(uuid.New()))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_REQUEST_BODY", errorCode(t, rr))
}
