package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Login はテナント管理者・生徒のログイン
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Login")

	var req model.LoginRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid login request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, logger, "Login failed", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// StudentLogin は生徒専用のログイン
func (h *AuthHandler) StudentLogin(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "StudentLogin")

	var req model.StudentLoginRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid student login request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.StudentLogin(r.Context(), &req)
	if err != nil {
		handleServiceError(w, logger, "Student login failed", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// SysLogin はシステム管理者のログイン
func (h *AuthHandler) SysLogin(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "SysLogin")

	var req model.SysLoginRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid sys login request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SysLogin(r.Context(), &req)
	if err != nil {
		handleServiceError(w, logger, "Sys login failed", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
