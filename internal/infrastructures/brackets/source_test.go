package brackets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	derr "github.com/ozzus/brackets/internal/domain/errors"
	"github.com/ozzus/brackets/internal/domain/models"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/http/client"
)

const gamesJSON = `{"games": [{"date": "2026-02-16", "games": [{"id": 1, "game_time": "2026-02-16T18:00:00Z", "stage": true, "team_stats": [{"id": 10, "score": 70, "result": "Won", "team_name": "A", "team_logo": null}, {"id": 11, "score": 65, "result": "Lost", "team_name": "B", "team_logo": null}]}]}]}`

func TestSource_GamesResponseEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tournaments/3/games.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(gamesJSON))
	}))
	defer srv.Close()

	source := NewSource(client.NewClient(nil, client.StaticBaseURL(srv.URL), srv.Client()))
	resp, err := source.GamesResponse(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	games := resp.Flatten()
	if len(games) != 1 {
		t.Fatalf("expected one game, got %d", len(games))
	}
	g := games[0]
	if g.Status(time.Now()) != models.GameStatusFinished {
		t.Fatalf("expected finished, got %s", g.Status(time.Now()))
	}
	if w, ok := g.Winner(); !ok || w.ID != 10 {
		t.Fatalf("expected winner 10, got %+v %v", w, ok)
	}
	if *g.HomeScore() != 70 || *g.AwayScore() != 65 {
		t.Fatalf("expected 70-65, got %d-%d", *g.HomeScore(), *g.AwayScore())
	}
}

func TestSource_FlatGamesAcceptBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 4, "game_time": "2026-02-16 10:00:00", "team_stats": []}]`))
	}))
	defer srv.Close()

	source := NewSource(client.NewClient(nil, client.StaticBaseURL(srv.URL), srv.Client()))
	games, err := source.Games(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 1 || games[0].GameTime == nil || games[0].GameTime.Hour() != 10 {
		t.Fatalf("unexpected games: %+v", games)
	}
}

func TestSource_ErrorKeepsClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	source := NewSource(client.NewClient(nil, client.StaticBaseURL(srv.URL), srv.Client()))
	_, err := source.Standings(context.Background(), 3)
	if !errors.Is(err, derr.ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
