package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	derr "github.com/ozzus/brackets/internal/domain/errors"
	"github.com/ozzus/brackets/internal/domain/models"
	"go.uber.org/zap"
)

type sourceMock struct {
	tournaments []models.Tournament
	games       models.GamesResponse
	standings   []models.TeamStanding
	topStats    []models.StatCategory
	teamSeason  models.TeamSeasonDetail

	standingsErr error
	gamesErr     error
	topStatsErr  error

	// blockTopStats makes TopStats wait for cancellation.
	blockTopStats bool
	topStatsCtx   error

	calls atomic.Int32
}

func (m *sourceMock) Tournaments(_ context.Context) ([]models.Tournament, error) {
	m.calls.Add(1)
	return m.tournaments, nil
}

func (m *sourceMock) GamesResponse(_ context.Context, _ int64) (models.GamesResponse, error) {
	m.calls.Add(1)
	return m.games, m.gamesErr
}

func (m *sourceMock) Games(_ context.Context, _ int64) ([]models.Game, error) {
	m.calls.Add(1)
	return m.games.Flatten(), m.gamesErr
}

func (m *sourceMock) Standings(_ context.Context, _ int64) ([]models.TeamStanding, error) {
	m.calls.Add(1)
	return m.standings, m.standingsErr
}

func (m *sourceMock) TopStats(ctx context.Context, _ int64) ([]models.StatCategory, error) {
	m.calls.Add(1)
	if m.blockTopStats {
		<-ctx.Done()
		m.topStatsCtx = ctx.Err()
		return nil, ctx.Err()
	}
	return m.topStats, m.topStatsErr
}

func (m *sourceMock) GameDetail(_ context.Context, _, _ int64) (models.GameDetailResponse, error) {
	m.calls.Add(1)
	return models.GameDetailResponse{}, nil
}

func (m *sourceMock) PlayerSeason(_ context.Context, _ int64) (models.PlayerSeasonDetailResponse, error) {
	m.calls.Add(1)
	return models.PlayerSeasonDetailResponse{}, nil
}

func (m *sourceMock) TeamSeason(_ context.Context, _ int64) (models.TeamSeasonDetail, error) {
	m.calls.Add(1)
	return m.teamSeason, nil
}

func TestTournaments_FiltersByGender(t *testing.T) {
	source := &sourceMock{tournaments: []models.Tournament{
		{ID: 1, Gender: models.GenderMale},
		{ID: 2, Gender: models.GenderFemale},
	}}
	svc := NewStatsService(zap.NewNop(), source)

	all, err := svc.Tournaments(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two tournaments, got %d", len(all))
	}

	female := models.GenderFemale
	got, err := svc.Tournaments(context.Background(), &female)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected filtered tournaments: %+v", got)
	}
}

func TestTopStats_DropsEmptyCategories(t *testing.T) {
	source := &sourceMock{topStats: []models.StatCategory{
		{Name: "Puntos", Stats: []models.PlayerStatEntry{{ID: 1, Score: 30}}},
		{Name: "Asistencias"},
	}}
	svc := NewStatsService(zap.NewNop(), source)

	got, err := svc.TopStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].Name != "Puntos" {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestTeamSeason_DropsEmptyLeaderCategories(t *testing.T) {
	source := &sourceMock{teamSeason: models.TeamSeasonDetail{StatLeaders: []models.StatLeaderCategory{
		{Key: "as"},
		{Key: "points", Players: []models.StatLeaderEntry{{FirstName: "Ana", Total: 31}}},
	}}}
	svc := NewStatsService(zap.NewNop(), source)

	got, err := svc.TeamSeason(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.StatLeaders) != 1 || got.StatLeaders[0].Key != "points" {
		t.Fatalf("unexpected leaders: %+v", got.StatLeaders)
	}
}

func TestGameDays_AppliesFilterAndWrapsErrors(t *testing.T) {
	won := models.ResultWon
	source := &sourceMock{games: models.GamesResponse{Groups: []models.DateGroup{
		{Date: "2026-02-16", Games: []models.Game{
			{ID: 1, TeamStats: []models.TeamStat{{ID: 1, Result: &won}, {ID: 2}}},
			{ID: 2},
		}},
	}}}
	svc := NewStatsService(zap.NewNop(), source)

	got, err := svc.GameDays(context.Background(), 1, models.GameFilterUpcoming)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || len(got[0].Games) != 1 || got[0].Games[0].ID != 2 {
		t.Fatalf("unexpected groups: %+v", got)
	}

	source.gamesErr = &derr.NetworkError{Op: "GET", URL: "http://x", Err: errors.New("refused")}
	_, err = svc.GameDays(context.Background(), 1, models.GameFilterAll)
	if !errors.Is(err, derr.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestTournamentOverview_Success(t *testing.T) {
	source := &sourceMock{
		standings: []models.TeamStanding{{ID: 1}},
		games:     models.GamesResponse{Groups: []models.DateGroup{{Date: "2026-02-16"}}},
		topStats: []models.StatCategory{
			{Name: "Puntos", Stats: []models.PlayerStatEntry{{ID: 1}}},
			{Name: "Vacia"},
		},
	}
	svc := NewStatsService(zap.NewNop(), source)

	got, err := svc.TournamentOverview(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.Standings) != 1 || len(got.GameDays) != 1 || len(got.TopStats) != 1 {
		t.Fatalf("unexpected overview: %+v", got)
	}
	if calls := source.calls.Load(); calls != 3 {
		t.Fatalf("expected three source calls, got %d", calls)
	}
}

func TestTournamentOverview_FailureCancelsSiblings(t *testing.T) {
	source := &sourceMock{
		standingsErr:  &derr.DecodingError{Kind: derr.KindKeyNotFound, Path: "standings[0].name"},
		blockTopStats: true,
	}
	svc := NewStatsService(zap.NewNop(), source)

	_, err := svc.TournamentOverview(context.Background(), 1)
	if !errors.Is(err, derr.ErrDecoding) {
		t.Fatalf("expected ErrDecoding, got %v", err)
	}
	if !errors.Is(source.topStatsCtx, context.Canceled) {
		t.Fatalf("expected top stats fetch to be cancelled, got %v", source.topStatsCtx)
	}
}
