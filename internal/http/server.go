package http

import (
	"net/http"

	"github.com/everolfe/matchday/internal/config"
	"github.com/everolfe/matchday/internal/metrics"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/everolfe/matchday/internal/scheduler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewServer(sched *scheduler.Scheduler, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, pubsubClient pubsub.PubSubClient) *Server {
	server := &Server{
		Scheduler:      sched,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
		pubsub:         pubsubClient,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	// paramsMiddleware handles 'verbose' and 'dry_run' for every route.
	s.Router.Use(paramsMiddleware)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Get("/health", s.HealthCheckHandler())
	s.Router.Post("/refresh", s.RefreshHandler())
	s.Router.Post("/clear", s.ClearSnapshotHandler())
	s.Router.Post("/events/match-created", s.MatchCreatedEventHandler())

	s.Router.Route("/arenas", func(r chi.Router) {
		r.Get("/", s.ListArenasHandler())
		r.Get("/search", s.SearchArenasHandler())
		r.Post("/", s.CreateArenaHandler())
		r.Put("/{id}", s.UpdateArenaHandler())
		r.Delete("/{id}", s.DeleteArenaHandler())
	})

	s.Router.Route("/teams", func(r chi.Router) {
		r.Get("/", s.ListTeamsHandler())
		r.Post("/", s.CreateTeamHandler())
		r.Post("/bulk", s.CreateTeamsBulkHandler())
		r.Put("/{id}", s.UpdateTeamHandler())
		r.Delete("/{id}", s.DeleteTeamHandler())
		r.Put("/{id}/players/{playerID}", s.AssignPlayerHandler())
		r.Delete("/{id}/players/{playerID}", s.RemovePlayerHandler())
	})

	s.Router.Route("/players", func(r chi.Router) {
		r.Get("/", s.ListPlayersHandler())
		r.Get("/search", s.SearchPlayersHandler())
		r.Post("/", s.CreatePlayerHandler())
		r.Put("/{id}", s.UpdatePlayerHandler())
		r.Delete("/{id}", s.DeletePlayerHandler())
	})

	s.Router.Route("/matches", func(r chi.Router) {
		r.Get("/", s.ListMatchesHandler())
		r.Get("/search/tournament", s.SearchMatchesByTournamentHandler())
		r.Get("/search/date", s.SearchMatchesByDateHandler())
		r.Post("/", s.CreateMatchHandler())
		r.Post("/{id}/edit", s.EditMatchHandler())
		r.Delete("/{id}", s.DeleteMatchHandler())
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
