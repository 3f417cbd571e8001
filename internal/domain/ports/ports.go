package ports

import (
	"context"

	"github.com/ozzus/brackets/internal/domain/models"
)

// BaseURLProvider is read on every request and never cached, so it may be
// switched at runtime.
type BaseURLProvider interface {
	BaseURL() string
}

type StatsSource interface {
	Tournaments(ctx context.Context) ([]models.Tournament, error)
	GamesResponse(ctx context.Context, tournamentID int64) (models.GamesResponse, error)
	Games(ctx context.Context, tournamentID int64) ([]models.Game, error)
	Standings(ctx context.Context, tournamentID int64) ([]models.TeamStanding, error)
	TopStats(ctx context.Context, tournamentID int64) ([]models.StatCategory, error)
	GameDetail(ctx context.Context, tournamentID, gameID int64) (models.GameDetailResponse, error)
	PlayerSeason(ctx context.Context, playerSeasonID int64) (models.PlayerSeasonDetailResponse, error)
	TeamSeason(ctx context.Context, teamSeasonID int64) (models.TeamSeasonDetail, error)
}
