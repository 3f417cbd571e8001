package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ozzus/brackets/internal/application/service"
	"github.com/ozzus/brackets/internal/infrastructures/brackets"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/http/client"
	"go.uber.org/zap"
)

func newTestStats(t *testing.T) *service.StatsService {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tournaments.json":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Liga Norte","gender":0,"team_count":8},{"id":2,"name":"Copa Femenil","gender":1}]`))
		case "/api/tournaments/1/games.json":
			_, _ = w.Write([]byte(`{"games":[{"date":"2026-02-16","games":[{"id":1,"game_time":"2026-02-16T18:00:00Z","team_stats":[{"id":10,"score":70,"result":"Won","team_name":"A"},{"id":11,"score":65,"result":"Lost","team_name":"B"}]},{"id":2,"game_time":"2099-01-01","team_stats":[{"id":12,"team_name":"C"},{"id":13,"team_name":"D"}]}]}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	c := client.NewClient(zap.NewNop(), client.StaticBaseURL(srv.URL), srv.Client())
	return service.NewStatsService(zap.NewNop(), brackets.NewSource(c))
}

func TestRun_Tournaments(t *testing.T) {
	color.NoColor = true
	stats := newTestStats(t)

	var out bytes.Buffer
	if err := run(context.Background(), stats, []string{"tournaments", "-gender", "female"}, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Copa Femenil") || strings.Contains(out.String(), "Liga Norte") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRun_GamesWithTrailingFilter(t *testing.T) {
	color.NoColor = true
	stats := newTestStats(t)

	var out bytes.Buffer
	if err := run(context.Background(), stats, []string{"games", "1", "-filter", "upcoming"}, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "C vs D") || strings.Contains(out.String(), "A 70") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRun_BackendErrorIsNotUsage(t *testing.T) {
	stats := newTestStats(t)

	err := run(context.Background(), stats, []string{"standings", "9"}, &bytes.Buffer{})
	if err == nil || errors.Is(err, errUsage) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	stats := newTestStats(t)

	for _, args := range [][]string{
		nil,
		{"unknown"},
		{"standings"},
		{"standings", "abc"},
		{"game", "1"},
		{"tournaments", "-gender", "mixed"},
		{"games", "1", "-filter", "live"},
	} {
		err := run(context.Background(), stats, args, &bytes.Buffer{})
		if !errors.Is(err, errUsage) {
			t.Fatalf("%v: expected usage error, got %v", args, err)
		}
	}
}

func TestParseInterspersed(t *testing.T) {
	fs := flag.NewFlagSet("games", flag.ContinueOnError)
	filter := fs.String("filter", "all", "")

	positional, err := parseInterspersed(fs, []string{"7", "-filter", "completed", "8"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(positional, []string{"7", "8"}) || *filter != "completed" {
		t.Fatalf("unexpected parse: %v %q", positional, *filter)
	}
}
