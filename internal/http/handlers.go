package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/go-chi/chi/v5"
)

// matchDraftBody is the wire form of a match draft. The kickoff crosses the
// wire as a naive local timestamp, which encoding/json cannot decode into a
// time.Time directly.
type matchDraftBody struct {
	DateTime   string `json:"dateTime"`
	Tournament string `json:"tournamentName"`
	ArenaID    string `json:"arenaId"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
}

func (b matchDraftBody) toDraft() (domain.MatchDraft, error) {
	draft := domain.MatchDraft{
		Tournament: b.Tournament,
		ArenaID:    b.ArenaID,
		HomeTeamID: b.HomeTeamID,
		AwayTeamID: b.AwayTeamID,
	}
	if b.DateTime == "" {
		return draft, nil
	}
	kickoff, err := domain.ParseLocalTime(b.DateTime)
	if err != nil {
		return draft, &domain.InvalidValueError{Field: "dateTime", Reason: "must be YYYY-MM-DDTHH:MM:SS"}
	}
	draft.Kickoff = &kickoff
	return draft, nil
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Scheduler.Refresh(r.Context()); err != nil {
			log.Error("Refresh failed", "error", err)
			respondJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"arenas":  len(s.Scheduler.Arenas()),
			"teams":   len(s.Scheduler.Teams()),
			"players": len(s.Scheduler.Players()),
			"matches": len(s.Scheduler.Matches()),
		})
	}
}

// MatchCreatedEventHandler consumes match-created push deliveries from the
// Pub/Sub subscription. Another instance (or the seeder pipeline) created the
// match, so the local collections are stale; a full refresh converges them.
func (s *Server) MatchCreatedEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		event := pubsub.MatchEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}
		log.Info("Received match-created event", "matchID", event.MatchID, "tournament", event.Tournament)

		if err := s.Scheduler.Refresh(r.Context()); err != nil {
			log.Error("Refresh after match-created event failed", "error", err)
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) ClearSnapshotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear the snapshot store")
		if err := s.Scheduler.ClearSnapshot(); err != nil {
			log.Error("Failed to clear snapshot store", "error", err)
			respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Snapshot cleared!")
	}
}

func (s *Server) ListArenasHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.Scheduler.Arenas())
	}
}

func (s *Server) SearchArenasHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minCapacity, err := intQueryParam(r, "min")
		if err != nil {
			respondError(w, err)
			return
		}
		maxCapacity, err := intQueryParam(r, "max")
		if err != nil {
			respondError(w, err)
			return
		}
		arenas, err := s.Scheduler.SearchArenasByCapacity(r.Context(), minCapacity, maxCapacity)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, arenas)
	}
}

func (s *Server) CreateArenaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.ArenaDraft
		if err := decodeBody(r, &draft); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		arena, err := s.Scheduler.CreateArena(r.Context(), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, arena)
	}
}

func (s *Server) UpdateArenaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.ArenaDraft
		if err := decodeBody(r, &draft); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		arena, err := s.Scheduler.UpdateArena(r.Context(), chi.URLParam(r, "id"), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, arena)
	}
}

func (s *Server) DeleteArenaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Scheduler.DeleteArena(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.Scheduler.Teams())
	}
}

func (s *Server) CreateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.TeamDraft
		if err := decodeBody(r, &draft); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		team, err := s.Scheduler.CreateTeam(r.Context(), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, team)
	}
}

func (s *Server) CreateTeamsBulkHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var drafts []domain.TeamDraft
		if err := decodeBody(r, &drafts); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		teams, err := s.Scheduler.CreateTeamsBulk(r.Context(), drafts)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, teams)
	}
}

func (s *Server) UpdateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.TeamDraft
		if err := decodeBody(r, &draft); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		team, err := s.Scheduler.UpdateTeam(r.Context(), chi.URLParam(r, "id"), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, team)
	}
}

func (s *Server) DeleteTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Scheduler.DeleteTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func (s *Server) AssignPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "id")
		playerID := chi.URLParam(r, "playerID")
		team, err := s.Scheduler.AssignPlayerToTeam(r.Context(), playerID, teamID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, team)
	}
}

func (s *Server) RemovePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "id")
		playerID := chi.URLParam(r, "playerID")
		team, err := s.Scheduler.RemovePlayerFromTeam(r.Context(), teamID, playerID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, team)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.Scheduler.Players())
	}
}

func (s *Server) SearchPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		age, err := intQueryParam(r, "age")
		if err != nil {
			respondError(w, err)
			return
		}
		if age == nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "missing 'age' parameter"})
			return
		}
		players, err := s.Scheduler.SearchPlayersByAge(r.Context(), *age)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.PlayerDraft
		if err := decodeBody(r, &draft); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		player, err := s.Scheduler.CreatePlayer(r.Context(), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.PlayerDraft
		if err := decodeBody(r, &draft); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		player, err := s.Scheduler.UpdatePlayer(r.Context(), chi.URLParam(r, "id"), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Scheduler.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if term := r.URL.Query().Get("filter"); term != "" {
			respondJSON(w, http.StatusOK, s.Scheduler.FilterMatchesLocal(term))
			return
		}
		respondJSON(w, http.StatusOK, s.Scheduler.Matches())
	}
}

func (s *Server) SearchMatchesByTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Scheduler.SearchMatchesByTournament(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) SearchMatchesByDateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := dateQueryParam(r, "from")
		if err != nil {
			respondError(w, err)
			return
		}
		to, err := dateQueryParam(r, "to")
		if err != nil {
			respondError(w, err)
			return
		}
		matches, err := s.Scheduler.SearchMatchesByDateRange(r.Context(), from, to)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body matchDraftBody
		if err := decodeBody(r, &body); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		draft, err := body.toDraft()
		if err != nil {
			respondError(w, err)
			return
		}
		match, err := s.Scheduler.CreateMatch(r.Context(), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) EditMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body matchDraftBody
		if err := decodeBody(r, &body); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		draft, err := body.toDraft()
		if err != nil {
			respondError(w, err)
			return
		}
		result, err := s.Scheduler.EditMatch(r.Context(), chi.URLParam(r, "id"), draft, isDryRunFromContext(r))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Scheduler.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}
