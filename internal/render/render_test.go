package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/ozzus/brackets/internal/domain/models"
)

func init() {
	color.NoColor = true
}

func intPtr(v int) *int { return &v }

func TestStandings(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Standings([]models.TeamStanding{
		{TeamName: "Aguilas", Wins: 3, Losses: 1, PointsFor: 300, PointsAgainst: 288, Average: 1.5},
		{TeamName: "Toros", Wins: 1, Losses: 3, PointsFor: 250, PointsAgainst: 262},
	})

	out := buf.String()
	for _, want := range []string{"Standings", "Aguilas", "3-1", "+12", "Toros", "-12", "1.5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestGameDays(t *testing.T) {
	won := models.ResultWon
	now := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	New(&buf).GameDays([]models.DateGroup{{Date: "2026-02-16", Games: []models.Game{
		{ID: 1, TeamStats: []models.TeamStat{
			{ID: 10, TeamName: "A", Score: intPtr(70), Result: &won},
			{ID: 11, TeamName: "B", Score: intPtr(65)},
		}},
		{ID: 2},
	}}}, now)

	out := buf.String()
	for _, want := range []string{"2026-02-16", "A 70 vs B 65", "[finished]", "#2 scheduled"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	New(&buf).GameDays(nil, now)
	if !strings.Contains(buf.String(), "no games") {
		t.Fatalf("expected empty marker, got %q", buf.String())
	}
}

func TestGameDetail_BoxScore(t *testing.T) {
	resp := models.GameDetailResponse{
		Labels: models.StatLabels{Short: map[string]string{"points": "PTS"}},
		Game: models.GameDetail{
			ActiveStats: []string{"points", "tr"},
			Sets:        models.GameSets{TeamA: "A", TeamB: "B", TeamAScore: 70, TeamBScore: 65},
			Venue:       &models.Venue{Name: "Arena", CourtNumber: "2"},
			TeamStats: []models.GameDetailTeamStat{{
				TeamName: "A",
				Score:    70,
				PlayerStats: []models.PlayerGameStat{
					{PlayerShortName: "A. Diaz", FirstName: "Ana", DynamicStats: models.DynamicStats{"points": intPtr(20), "tr": nil}},
					{PlayerShortName: "Equipo", FirstName: models.TeamEntryFirstName, DynamicStats: models.DynamicStats{"points": intPtr(70), "tr": intPtr(30)}},
				},
			}},
		},
	}

	var buf bytes.Buffer
	New(&buf).GameDetail(resp)

	out := buf.String()
	for _, want := range []string{"A 70 - 65 B", "Arena - Court 2", "PTS", "TR", "A. Diaz", "-", "Team"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Equipo") {
		t.Fatalf("expected team entry rendered as totals only:\n%s", out)
	}
}

func TestPlayerSeason_NoGames(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PlayerSeason(models.PlayerSeasonDetailResponse{Season: models.PlayerSeasonInfo{
		Team:   "Aguilas",
		Number: intPtr(7),
		Player: models.Player{FirstName: "Ana", LastName: "Diaz"},
	}})

	out := buf.String()
	for _, want := range []string{"Ana Diaz", "Aguilas #7", "no games played"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPlayerSeason_Averages(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PlayerSeason(models.PlayerSeasonDetailResponse{
		Labels: models.StatLabels{Long: map[string]string{"points": "Puntos"}},
		Season: models.PlayerSeasonInfo{
			Player:      models.Player{FirstName: "Ana", LastName: "Diaz"},
			ActiveStats: []string{"points"},
			Stats: []models.PlayerSeasonGameStat{
				{DynamicStats: models.DynamicStats{"points": intPtr(10)}},
				{DynamicStats: models.DynamicStats{"points": intPtr(21)}},
			},
		},
	})

	out := buf.String()
	for _, want := range []string{"PPG 15.5", "Puntos", "31"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
