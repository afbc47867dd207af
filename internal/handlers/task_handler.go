package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{service: s}
}

// GenerateTask は次のタスクを返します。未完了タスクがあればそれを返します
func (h *TaskHandler) GenerateTask(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GenerateTask")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.GenerateTaskRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid generate task request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := resolveUserID(session, req.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GenerateTask(r.Context(), tenantID, userID, req.BookID)
	if err != nil {
		handleServiceError(w, logger, "Error generating task", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetTask")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	taskID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	task, err := h.service.GetTask(r.Context(), tenantID, taskID, ownerID(session))
	if err != nil {
		handleServiceError(w, logger, "Error getting task", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "UpdateTask")

	tenantID, session, err := requestScope(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	taskID, err := webutil.URLParamUint(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateTaskRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update task request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	task, err := h.service.UpdateTask(r.Context(), tenantID, taskID, ownerID(session), &req)
	if err != nil {
		handleServiceError(w, logger, "Error updating task", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, task)
}
