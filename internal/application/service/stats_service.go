package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ozzus/brackets/internal/domain/models"
	"github.com/ozzus/brackets/internal/domain/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	log    *zap.Logger
	source ports.StatsSource
	now    func() time.Time
}

func NewStatsService(log *zap.Logger, source ports.StatsSource) *StatsService {
	return &StatsService{
		log:    log,
		source: source,
		now:    time.Now,
	}
}

// Now is the clock used for game status.
func (s *StatsService) Now() time.Time {
	return s.now()
}

// Tournaments lists tournaments, optionally only those of one gender.
func (s *StatsService) Tournaments(ctx context.Context, gender *models.Gender) ([]models.Tournament, error) {
	const op = "service.Tournaments"

	tournaments, err := s.source.Tournaments(ctx)
	if err != nil {
		s.log.Error("fetch tournaments failed", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if gender != nil {
		tournaments = models.FilterTournamentsByGender(tournaments, *gender)
	}
	s.log.Debug("tournaments loaded", zap.String("op", op), zap.Int("count", len(tournaments)))
	return tournaments, nil
}

func (s *StatsService) Standings(ctx context.Context, tournamentID int64) ([]models.TeamStanding, error) {
	const op = "service.Standings"

	standings, err := s.source.Standings(ctx, tournamentID)
	if err != nil {
		s.log.Error("fetch standings failed", zap.String("op", op), zap.Int64("tournament_id", tournamentID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return standings, nil
}

// GameDays returns the date-grouped games narrowed by filter.
func (s *StatsService) GameDays(ctx context.Context, tournamentID int64, filter models.GameFilter) ([]models.DateGroup, error) {
	const op = "service.GameDays"

	resp, err := s.source.GamesResponse(ctx, tournamentID)
	if err != nil {
		s.log.Error("fetch games failed", zap.String("op", op), zap.Int64("tournament_id", tournamentID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return models.FilterGameDays(resp.Groups, filter), nil
}

func (s *StatsService) Games(ctx context.Context, tournamentID int64) ([]models.Game, error) {
	const op = "service.Games"

	games, err := s.source.Games(ctx, tournamentID)
	if err != nil {
		s.log.Error("fetch flat games failed", zap.String("op", op), zap.Int64("tournament_id", tournamentID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return games, nil
}

// TopStats returns leaderboard categories that have at least one entry.
func (s *StatsService) TopStats(ctx context.Context, tournamentID int64) ([]models.StatCategory, error) {
	const op = "service.TopStats"

	categories, err := s.source.TopStats(ctx, tournamentID)
	if err != nil {
		s.log.Error("fetch top stats failed", zap.String("op", op), zap.Int64("tournament_id", tournamentID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return models.ActiveCategories(categories), nil
}

func (s *StatsService) GameDetail(ctx context.Context, tournamentID, gameID int64) (models.GameDetailResponse, error) {
	const op = "service.GameDetail"

	detail, err := s.source.GameDetail(ctx, tournamentID, gameID)
	if err != nil {
		s.log.Error("fetch game detail failed",
			zap.String("op", op),
			zap.Int64("tournament_id", tournamentID),
			zap.Int64("game_id", gameID),
			zap.Error(err),
		)
		return models.GameDetailResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	return detail, nil
}

func (s *StatsService) PlayerSeason(ctx context.Context, playerSeasonID int64) (models.PlayerSeasonDetailResponse, error) {
	const op = "service.PlayerSeason"

	detail, err := s.source.PlayerSeason(ctx, playerSeasonID)
	if err != nil {
		s.log.Error("fetch player season failed", zap.String("op", op), zap.Int64("player_season_id", playerSeasonID), zap.Error(err))
		return models.PlayerSeasonDetailResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	return detail, nil
}

func (s *StatsService) TeamSeason(ctx context.Context, teamSeasonID int64) (models.TeamSeasonDetail, error) {
	const op = "service.TeamSeason"

	detail, err := s.source.TeamSeason(ctx, teamSeasonID)
	if err != nil {
		s.log.Error("fetch team season failed", zap.String("op", op), zap.Int64("team_season_id", teamSeasonID), zap.Error(err))
		return models.TeamSeasonDetail{}, fmt.Errorf("%s: %w", op, err)
	}
	detail.StatLeaders = detail.NonEmptyStatLeaders()
	return detail, nil
}

type TournamentOverview struct {
	Standings []models.TeamStanding
	GameDays  []models.DateGroup
	TopStats  []models.StatCategory
}

// TournamentOverview loads standings, games and leaders concurrently. The
// first failure cancels the remaining fetches.
func (s *StatsService) TournamentOverview(ctx context.Context, tournamentID int64) (TournamentOverview, error) {
	const op = "service.TournamentOverview"

	logger := s.log.With(
		zap.String("op", op),
		zap.Int64("tournament_id", tournamentID),
	)

	var out TournamentOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		standings, err := s.source.Standings(gctx, tournamentID)
		if err != nil {
			return fmt.Errorf("standings: %w", err)
		}
		out.Standings = standings
		return nil
	})
	g.Go(func() error {
		resp, err := s.source.GamesResponse(gctx, tournamentID)
		if err != nil {
			return fmt.Errorf("games: %w", err)
		}
		out.GameDays = resp.Groups
		return nil
	})
	g.Go(func() error {
		categories, err := s.source.TopStats(gctx, tournamentID)
		if err != nil {
			return fmt.Errorf("top stats: %w", err)
		}
		out.TopStats = models.ActiveCategories(categories)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("overview failed", zap.Error(err))
		return TournamentOverview{}, fmt.Errorf("%s: %w", op, err)
	}

	logger.Debug("overview loaded",
		zap.Int("standings", len(out.Standings)),
		zap.Int("game_days", len(out.GameDays)),
		zap.Int("categories", len(out.TopStats)),
	)
	return out, nil
}
