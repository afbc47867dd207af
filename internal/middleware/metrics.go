package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// タスク生成の結果 (created / resumed / all_completed)
	taskGenerateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_task_generate_total",
			Help: "Total number of learning task generate calls by outcome",
		},
		[]string{"outcome"},
	)

	answerSubmitTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "practice_answer_submit_total",
			Help: "Total number of graded answers submitted",
		},
		[]string{"correct"},
	)

	wordImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "word_import_rows_total",
			Help: "Total number of imported word rows by result",
		},
		[]string{"result"},
	)
)

// MetricsMiddleware はHTTPリクエストのPrometheusメトリクスを収集します。
// endpoint ラベルには chi のルートパターンを使い、IDごとにラベルが増えないようにします
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// RecordTaskGenerate はタスク生成の結果を記録します
func RecordTaskGenerate(outcome string) {
	taskGenerateTotal.WithLabelValues(outcome).Inc()
}

// RecordAnswerSubmit は採点結果の送信を記録します
func RecordAnswerSubmit(correct bool) {
	answerSubmitTotal.WithLabelValues(strconv.FormatBool(correct)).Inc()
}

// RecordWordImport はインポート行数を記録します
func RecordWordImport(imported, failed int) {
	wordImportRowsTotal.WithLabelValues("imported").Add(float64(imported))
	wordImportRowsTotal.WithLabelValues("failed").Add(float64(failed))
}
