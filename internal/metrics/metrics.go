package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_logins_total",
		Help: "Login attempts by outcome",
	}, []string{"outcome"})
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_registrations_total",
		Help: "Number of registered users",
	})
	AnswersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_answers_total",
		Help: "Submitted answers by correctness and difficulty",
	}, []string{"correct", "difficulty"})
	AchievementsUnlockedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_achievements_unlocked_total",
		Help: "Achievements unlocked by achievement ID",
	}, []string{"achievement"})
	LifelinesUsedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_lifelines_used_total",
		Help: "Lifelines consumed by kind",
	}, []string{"kind"})
	GamesStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_games_started_total",
		Help: "Game sessions started by mode",
	}, []string{"mode"})
	GamesEvictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_games_evicted_total",
		Help: "Finished or abandoned games dropped by the janitor",
	})
	QuestionCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_question_cache_misses_total",
		Help: "Question bank loads that went to the backing loader",
	})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quiz_http_request_duration_seconds",
		Help:    "Latency of API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
