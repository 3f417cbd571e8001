package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ozzus/brackets/internal/application/service"
	"github.com/ozzus/brackets/internal/domain/models"
	"github.com/ozzus/brackets/internal/domain/ports"
	"go.uber.org/zap"
)

// StatsReader is the part of the stats service the gateway serves.
type StatsReader interface {
	Now() time.Time
	Tournaments(ctx context.Context, gender *models.Gender) ([]models.Tournament, error)
	Standings(ctx context.Context, tournamentID int64) ([]models.TeamStanding, error)
	GameDays(ctx context.Context, tournamentID int64, filter models.GameFilter) ([]models.DateGroup, error)
	TopStats(ctx context.Context, tournamentID int64) ([]models.StatCategory, error)
	TournamentOverview(ctx context.Context, tournamentID int64) (service.TournamentOverview, error)
	GameDetail(ctx context.Context, tournamentID, gameID int64) (models.GameDetailResponse, error)
	PlayerSeason(ctx context.Context, playerSeasonID int64) (models.PlayerSeasonDetailResponse, error)
	TeamSeason(ctx context.Context, teamSeasonID int64) (models.TeamSeasonDetail, error)
}

type StatsHandler struct {
	log     *zap.Logger
	stats   StatsReader
	baseURL ports.BaseURLProvider
}

func NewStatsHandler(log *zap.Logger, stats StatsReader, baseURL ports.BaseURLProvider) *StatsHandler {
	return &StatsHandler{log: log, stats: stats, baseURL: baseURL}
}

func (h *StatsHandler) Register(r *mux.Router) {
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/tournaments", h.Tournaments).Methods(http.MethodGet)
	v1.HandleFunc("/tournaments/{id}/standings", h.Standings).Methods(http.MethodGet)
	v1.HandleFunc("/tournaments/{id}/games", h.GameDays).Methods(http.MethodGet)
	v1.HandleFunc("/tournaments/{id}/top-stats", h.TopStats).Methods(http.MethodGet)
	v1.HandleFunc("/tournaments/{id}/overview", h.Overview).Methods(http.MethodGet)
	v1.HandleFunc("/tournaments/{tid}/games/{gid}", h.GameDetail).Methods(http.MethodGet)
	v1.HandleFunc("/player-seasons/{id}", h.PlayerSeason).Methods(http.MethodGet)
	v1.HandleFunc("/team-seasons/{id}", h.TeamSeason).Methods(http.MethodGet)
}

func (h *StatsHandler) viewer() viewer {
	return viewer{baseURL: h.baseURL.BaseURL(), now: h.stats.Now()}
}

func (h *StatsHandler) Tournaments(w http.ResponseWriter, r *http.Request) {
	gender, errMsg := genderQuery(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	items, err := h.stats.Tournaments(r.Context(), gender)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tournaments": h.viewer().tournaments(items)})
}

func (h *StatsHandler) Standings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "tournament id must be a positive integer")
		return
	}

	items, err := h.stats.Standings(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"standings": h.viewer().standings(items)})
}

func (h *StatsHandler) GameDays(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "tournament id must be a positive integer")
		return
	}
	filter, errMsg := filterQuery(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	groups, err := h.stats.GameDays(r.Context(), id, filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": h.viewer().gameDays(groups)})
}

func (h *StatsHandler) TopStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "tournament id must be a positive integer")
		return
	}

	categories, err := h.stats.TopStats(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"top_stats": h.viewer().topStats(categories)})
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "tournament id must be a positive integer")
		return
	}

	overview, err := h.stats.TournamentOverview(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.viewer().overview(overview))
}

func (h *StatsHandler) GameDetail(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := pathID(r, "tid")
	if !ok {
		writeError(w, http.StatusBadRequest, "tournament id must be a positive integer")
		return
	}
	gameID, ok := pathID(r, "gid")
	if !ok {
		writeError(w, http.StatusBadRequest, "game id must be a positive integer")
		return
	}

	detail, err := h.stats.GameDetail(r.Context(), tournamentID, gameID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.viewer().gameDetail(detail))
}

func (h *StatsHandler) PlayerSeason(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "player season id must be a positive integer")
		return
	}

	detail, err := h.stats.PlayerSeason(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.viewer().playerSeason(detail))
}

func (h *StatsHandler) TeamSeason(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "team season id must be a positive integer")
		return
	}

	detail, err := h.stats.TeamSeason(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.viewer().teamSeason(detail))
}

func (h *StatsHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)
	h.log.Warn("request failed",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeError(w, status, message)
}
