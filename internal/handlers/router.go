package handlers

import (
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"

	"github.com/go-chi/chi/v5"
)

// Handlers は /api/v1 以下のハンドラをまとめたもの
type Handlers struct {
	Auth     *AuthHandler
	Tenant   *TenantHandler
	Book     *BookHandler
	Word     *WordHandler
	Student  *StudentHandler
	Task     *TaskHandler
	Plan     *PlanHandler
	Practice *PracticeHandler
	Stats    *StatsHandler
}

// Routes は r に API のルートを登録します。
// authMW はセッションを設定するミドルウェア (JWT または開発用ヘッダー)
func (h *Handlers) Routes(r chi.Router, authMW func(http.Handler) http.Handler, tenantAuth middleware.TenantAuthenticator) {
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// 認証不要
	r.Post("/auth/login", h.Auth.Login)
	r.Post("/auth/student/login", h.Auth.StudentLogin)
	r.Post("/sys/login", h.Auth.SysLogin)

	// システム管理者
	r.Route("/sys/tenants", func(r chi.Router) {
		r.Use(authMW)
		r.Use(middleware.RequireRole(model.RoleSysAdmin))
		r.Get("/", h.Tenant.ListTenants)
		r.Post("/", h.Tenant.CreateTenant)
		r.Get("/{id}", h.Tenant.GetTenant)
		r.Put("/{id}", h.Tenant.UpdateTenant)
		r.Delete("/{id}", h.Tenant.DeleteTenant)
	})

	// テナント内 (管理者・生徒)
	r.Group(func(r chi.Router) {
		r.Use(authMW)
		r.Use(middleware.TenantAuthMiddleware(tenantAuth))
		r.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStudent))

		r.Route("/wordbooks", func(r chi.Router) {
			r.Get("/", h.Book.ListBooks)
			r.Get("/{id}", h.Book.GetBook)
			r.With(adminOnly).Post("/", h.Book.CreateBook)
			r.With(adminOnly).Put("/{id}", h.Book.UpdateBook)
			r.With(adminOnly).Delete("/{id}", h.Book.DeleteBook)
			r.With(adminOnly).Post("/{id}/refresh-count", h.Book.RefreshWordCount)
		})

		r.Route("/words", func(r chi.Router) {
			r.Get("/book/{bookId}", h.Word.ListWordsByBook)
			r.Get("/{id}", h.Word.GetWord)
			r.With(adminOnly).Post("/", h.Word.CreateWord)
			r.With(adminOnly).Post("/import", h.Word.ImportWords)
			r.With(adminOnly).Post("/import/file", h.Word.ImportWordsFile)
			r.With(adminOnly).Put("/{id}", h.Word.UpdateWord)
			r.With(adminOnly).Delete("/{id}", h.Word.DeleteWord)
		})

		r.Route("/students", func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.Student.ListStudents)
			r.Post("/", h.Student.CreateStudent)
			r.Put("/{id}", h.Student.UpdateStudent)
			r.Delete("/{id}", h.Student.DeleteStudent)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/generate", h.Task.GenerateTask)
			r.Get("/{id}", h.Task.GetTask)
			r.Put("/{id}/update", h.Task.UpdateTask)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.Plan.ListPlans)
			r.Get("/current", h.Plan.GetCurrentPlan)
			// {id} は stats / start / pause / complete では単語帳ID、DELETE では計画ID
			r.Get("/{id}/stats", h.Plan.GetPlanStats)
			r.Put("/{id}/start", h.Plan.StartPlan)
			r.Put("/{id}/pause", h.Plan.PausePlan)
			r.Put("/{id}/complete", h.Plan.CompletePlan)
			r.Delete("/{id}", h.Plan.DeletePlan)
		})

		r.Route("/practice", func(r chi.Router) {
			r.Post("/submit", h.Practice.SubmitResult)
			r.Get("/wrong-words", h.Practice.ListWrongWords)
			r.Put("/wrong-words/{wordId}/review", h.Practice.ReviewWrongWord)
			r.Get("/history", h.Practice.History)
		})

		r.With(adminOnly).Get("/dashboard/stats", h.Stats.DashboardStats)
		r.Get("/dashboard/user-stats", h.Stats.UserStats)
		r.Get("/calendar", h.Stats.Calendar)
	})
}
