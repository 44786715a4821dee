package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"wellness-quiz-service/internal/logger"
	"wellness-quiz-service/internal/metrics"
)

// NewRouter mounts the REST API, the game websocket, health and metrics.
func NewRouter(h *Handler, ws *WSHandler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		for _, prefix := range []string{"", "/auth"} {
			r.Post(prefix+"/register", h.Register)
			r.Post(prefix+"/login", h.Login)
			r.Post(prefix+"/logout", h.Logout)
		}

		r.Get("/game/questions", h.Questions)
		r.Get("/game/topics", h.Topics)
		r.Get("/leaderboard", h.Leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireUser)

			r.Get("/user/profile", h.Profile)
			r.Get("/user/lifelines", h.Lifelines)

			r.Post("/game/answer", h.Answer)
			r.Post("/game/lifelines/fifty-fifty", h.FiftyFifty)
			r.Post("/game/lifelines/ask-expert", h.AskExpert)

			r.Route("/game/sessions", func(r chi.Router) {
				r.Post("/", h.StartGame)
				r.Get("/{gameID}", h.GameState)
				r.Delete("/{gameID}", h.EndGame)
				r.Post("/{gameID}/answer", h.GameAnswer)
				r.Post("/{gameID}/next", h.NextQuestion)
				r.Post("/{gameID}/lifelines/{kind}", h.GameLifeline)
				r.Get("/{gameID}/ws", ws.ServeWS)
			})

			r.Get("/achievements", h.Achievements)
			r.Get("/avatars", h.Avatars)
			r.Post("/avatars/purchase", h.PurchaseAvatar)
			r.Post("/avatars/select", h.SelectAvatar)
		})
	})
	return r
}

// requestLogger logs each request and records its latency by route pattern.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			elapsed := time.Since(start)
			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).
				Observe(elapsed.Seconds())
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", elapsed),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
