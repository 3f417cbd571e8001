package brackets

import (
	"context"
	"fmt"

	"github.com/ozzus/brackets/internal/domain/models"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/http/client"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/mappers"
)

// Source adapts the backend client to ports.StatsSource.
type Source struct {
	client *client.Client
}

func NewSource(client *client.Client) *Source {
	return &Source{
		client: client,
	}
}

func (s *Source) Tournaments(ctx context.Context) ([]models.Tournament, error) {
	resp, err := s.client.GetTournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tournaments: %w", err)
	}
	return mappers.ToDomainTournaments(resp), nil
}

func (s *Source) GamesResponse(ctx context.Context, tournamentID int64) (models.GamesResponse, error) {
	resp, err := s.client.GetGamesResponse(ctx, tournamentID)
	if err != nil {
		return models.GamesResponse{}, fmt.Errorf("get games for tournament %d: %w", tournamentID, err)
	}
	return mappers.ToDomainGamesResponse(resp), nil
}

func (s *Source) Games(ctx context.Context, tournamentID int64) ([]models.Game, error) {
	resp, err := s.client.GetGames(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get flat games for tournament %d: %w", tournamentID, err)
	}
	return mappers.ToDomainGames(resp), nil
}

func (s *Source) Standings(ctx context.Context, tournamentID int64) ([]models.TeamStanding, error) {
	resp, err := s.client.GetStandings(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get standings for tournament %d: %w", tournamentID, err)
	}
	return mappers.ToDomainStandings(resp), nil
}

func (s *Source) TopStats(ctx context.Context, tournamentID int64) ([]models.StatCategory, error) {
	resp, err := s.client.GetTopStats(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get top stats for tournament %d: %w", tournamentID, err)
	}
	return mappers.ToDomainTopStats(resp), nil
}

func (s *Source) GameDetail(ctx context.Context, tournamentID, gameID int64) (models.GameDetailResponse, error) {
	resp, err := s.client.GetGameDetail(ctx, tournamentID, gameID)
	if err != nil {
		return models.GameDetailResponse{}, fmt.Errorf("get game %d of tournament %d: %w", gameID, tournamentID, err)
	}
	return mappers.ToDomainGameDetail(resp), nil
}

func (s *Source) PlayerSeason(ctx context.Context, playerSeasonID int64) (models.PlayerSeasonDetailResponse, error) {
	resp, err := s.client.GetPlayerSeason(ctx, playerSeasonID)
	if err != nil {
		return models.PlayerSeasonDetailResponse{}, fmt.Errorf("get player season %d: %w", playerSeasonID, err)
	}
	return mappers.ToDomainPlayerSeason(resp), nil
}

func (s *Source) TeamSeason(ctx context.Context, teamSeasonID int64) (models.TeamSeasonDetail, error) {
	resp, err := s.client.GetTeamSeason(ctx, teamSeasonID)
	if err != nil {
		return models.TeamSeasonDetail{}, fmt.Errorf("get team season %d: %w", teamSeasonID, err)
	}
	return mappers.ToDomainTeamSeason(resp), nil
}
