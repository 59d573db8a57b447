package poolserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"quizrun/internal/question"
)

// PoolPath is where quiz clients fetch the pool from.
const PoolPath = "/data/questions.json"

// NewHandler builds the router serving the pool payload and its index page.
func NewHandler(cfg Config) (http.Handler, error) {
	if len(cfg.Pool) == 0 {
		return nil, errors.New("poolserver: pool is empty")
	}
	payload, err := question.MarshalJSON(cfg.Pool)
	if err != nil {
		return nil, err
	}
	logger := loggerOrNop(cfg.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(logger), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Cache-Control"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
	}

	r.Get("/", serveIndex(cfg.Pool, cfg.Source))
	r.Get(PoolPath, servePool(payload))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	return r, nil
}

// servePool writes the normalized pool as a JSON array.
func servePool(payload []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(payload)
	}
}

// serveIndex renders the summary page.
func serveIndex(pool question.Pool, source string) http.HandlerFunc {
	summary := summarize(pool, source)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexPage(summary).Render(r.Context(), w); err != nil {
			http.Error(w, "render index", http.StatusInternalServerError)
		}
	}
}

// requestLogger logs each request at debug level.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
