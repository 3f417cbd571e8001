package mappers

import (
	"testing"
	"time"

	"github.com/ozzus/brackets/internal/domain/models"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/dto"
)

func TestToDomainGamesResponse_EndToEnd(t *testing.T) {
	raw := `{"games": [{"date": "2026-02-16", "games": [{"id": 1, "game_time": "2026-02-16T18:00:00Z", "stage": true, "team_stats": [{"id": 10, "score": 70, "result": "Won", "team_name": "A", "team_logo": null}, {"id": 11, "score": 65, "result": "Lost", "team_name": "B", "team_logo": null}]}]}]}`

	resp, err := dto.UnmarshalGamesResponse([]byte(raw))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	games := ToDomainGamesResponse(resp).Flatten()
	if len(games) != 1 {
		t.Fatalf("expected one game, got %d", len(games))
	}
	g := games[0]

	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if status := g.Status(now); status != models.GameStatusFinished {
		t.Fatalf("expected finished, got %s", status)
	}
	w, ok := g.Winner()
	if !ok || w.ID != 10 {
		t.Fatalf("expected winner 10, got %+v %v", w, ok)
	}
	if s := g.HomeScore(); s == nil || *s != 70 {
		t.Fatalf("expected home score 70, got %v", s)
	}
	if s := g.AwayScore(); s == nil || *s != 65 {
		t.Fatalf("expected away score 65, got %v", s)
	}
	if g.TeamStats[0].TeamLogo != "" {
		t.Fatalf("expected empty logo, got %q", g.TeamStats[0].TeamLogo)
	}
}

func TestToDomainTopStats_BothRevisions(t *testing.T) {
	current := `{"top_stats":[{"name":"Puntos","stats":[{"id":9,"player":{"id":3,"first_name":"Ana","last_name":"Diaz","picture":"/p/3.png"},"team_name":"Aguilas","team_logo":"/t/5.png","score":"42","player_season_id":77}]}]}`
	legacy := `[{"category":"points","display_name":"Puntos","leaders":[{"player_id":3,"player_name":"Ana Diaz","team_name":"Aguilas","value":41.6}]},{"category":"as","leaders":[]}]`

	items, err := dto.UnmarshalTopStats([]byte(current))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := ToDomainTopStats(items)
	if len(got) != 1 || got[0].Name != "Puntos" || len(got[0].Stats) != 1 {
		t.Fatalf("unexpected categories: %+v", got)
	}
	e := got[0].Stats[0]
	if e.ID != 9 || e.Score != 42 || e.PlayerSeasonID != 77 || e.Player.FullName() != "Ana Diaz" {
		t.Fatalf("unexpected entry: %+v", e)
	}

	items, err = dto.UnmarshalTopStats([]byte(legacy))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got = ToDomainTopStats(items)
	if len(got) != 2 || got[0].Name != "Puntos" || got[1].Name != "as" {
		t.Fatalf("unexpected legacy categories: %+v", got)
	}
	e = got[0].Stats[0]
	if e.ID != 3 || e.Score != 42 || e.Player.FirstName != "Ana" || e.Player.LastName != "Diaz" {
		t.Fatalf("unexpected legacy entry: %+v", e)
	}
	if active := models.ActiveCategories(got); len(active) != 1 {
		t.Fatalf("expected empty category dropped, got %d", len(active))
	}
}

func TestToDomainGameDetail(t *testing.T) {
	raw := `{
		"long_name_stats": {"points": "Puntos"},
		"short_name_stats": {"points": "PTS"},
		"game": {
			"id": 3, "played": true, "round": 2, "venue": {"name": "Arena", "court_number": "B"},
			"active_stats": ["points", "tr"],
			"game_sets": {"team_a": "A", "team_a_score": 70, "team_b": "B", "team_b_score": 65},
			"team_stats": [
				{"id": 10, "team_name": "A", "score": 70, "last_five_games": [1, null],
				 "player_stats": [
					{"id": 1, "player_first_name": "Ana", "dynamic_stats": {"points": 20, "tr": null}},
					{"id": 2, "player_first_name": "Equipo", "dynamic_stats": {"points": 70}},
					{"id": 3, "player_first_name": "Eva", "dynamic_stats": {"points": 31}}
				 ]}
			]
		}
	}`

	resp, err := dto.UnmarshalGameDetail([]byte(raw))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := ToDomainGameDetail(resp)

	if got.Labels.ShortName("points") != "PTS" || got.Labels.LongName("tr") != "TR" {
		t.Fatalf("unexpected labels: %+v", got.Labels)
	}
	g := got.Game
	if g.Round != "2" || g.Venue == nil || g.Venue.CourtNumber != "B" {
		t.Fatalf("unexpected round/venue: %q %+v", g.Round, g.Venue)
	}
	if g.HomeScore() != 70 || g.AwayScore() != 65 {
		t.Fatalf("expected 70-65 with set fallback, got %d-%d", g.HomeScore(), g.AwayScore())
	}

	flags := g.TeamStats[0].LastFiveGames
	if len(flags) != 2 || flags[0] == nil || !*flags[0] || flags[1] != nil {
		t.Fatalf("unexpected last five: %v", flags)
	}

	ranked := g.RankedPlayers("points")
	if len(ranked) != 2 || ranked[0].ID != 3 || ranked[1].ID != 1 {
		t.Fatalf("unexpected ranking: %+v", ranked)
	}
	if totals, ok := g.TeamStats[0].Totals(); !ok || totals.ID != 2 {
		t.Fatalf("expected team totals row, got %+v %v", totals, ok)
	}
}

func TestToDomainTeamSeason_StatLeaders(t *testing.T) {
	raw := `{
		"long_name_stats": {"points": "Puntos"},
		"short_name_stats": {"points": "PTS"},
		"team_season": {
			"games": [],
			"player_seasons": [{"id": 5, "number": 7, "player": {"id": 3, "first_name": "Ana", "last_name": "Diaz"}}],
			"upcoming_game": {"id": 9, "game_time": "2026-03-01", "team_stats": []},
			"stat_leaders": {
				"tr": [{"id": 5, "first_name": "Ana", "last_name": "Diaz", "total": 9}],
				"points": [{"player_season_id": 6, "player": {"id": 4, "first_name": "Eva", "last_name": "Ruiz", "picture": "/p/4.png"}, "total": "31"}]
			}
		}
	}`

	resp, err := dto.UnmarshalTeamSeason([]byte(raw))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := ToDomainTeamSeason(resp)

	if len(got.Roster) != 1 || got.Roster[0].Player.FullName() != "Ana Diaz" {
		t.Fatalf("unexpected roster: %+v", got.Roster)
	}
	if got.UpcomingGame == nil || got.UpcomingGame.ID != 9 {
		t.Fatalf("unexpected upcoming game: %+v", got.UpcomingGame)
	}
	if len(got.StatLeaders) != 2 {
		t.Fatalf("expected two categories, got %+v", got.StatLeaders)
	}

	points, rebounds := got.StatLeaders[0], got.StatLeaders[1]
	if points.Key != "points" || points.LongName != "Puntos" || points.ShortName != "PTS" {
		t.Fatalf("unexpected points category: %+v", points)
	}
	if rebounds.Key != "tr" || rebounds.LongName != "TR" {
		t.Fatalf("unexpected rebounds category: %+v", rebounds)
	}

	eva := points.Players[0]
	if eva.FirstName != "Eva" || eva.Total != 31 || eva.PlayerSeasonID != 6 || eva.Image != "/p/4.png" {
		t.Fatalf("unexpected leader entry: %+v", eva)
	}
	if rebounds.Players[0].PlayerSeasonID != 5 {
		t.Fatalf("expected player season id from id, got %+v", rebounds.Players[0])
	}
}

func TestToDomainStandings(t *testing.T) {
	items, err := dto.UnmarshalStandings([]byte(`[{"team_season_id":5,"name":"Aguilas","won":3,"lost":1,"favor":300,"against":288,"avg":1.25,"tie_breaker":2}]`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := ToDomainStandings(items)
	if len(got) != 1 {
		t.Fatalf("expected one standing, got %d", len(got))
	}
	s := got[0]
	if s.Record() != "3-1" || s.PointDifferential() != 12 || s.Average != 1.25 || s.Tiebreaker != "2" {
		t.Fatalf("unexpected standing: %+v", s)
	}
}
