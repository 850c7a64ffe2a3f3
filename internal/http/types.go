package http

import (
	"net/http"

	"github.com/everolfe/matchday/internal/config"
	"github.com/everolfe/matchday/internal/metrics"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/everolfe/matchday/internal/scheduler"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	Scheduler      *scheduler.Scheduler
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *chi.Mux
	pubsub         pubsub.PubSubClient
}
