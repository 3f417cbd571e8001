// Package render prints stats screens to a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/ozzus/brackets/internal/domain/models"
)

var (
	header  = color.New(color.Bold, color.FgCyan)
	winner  = color.New(color.Bold, color.FgGreen)
	muted   = color.New(color.Faint)
	warning = color.New(color.FgYellow)
)

type Renderer struct {
	w io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Tournaments(items []models.Tournament) {
	header.Fprintln(r.w, "Tournaments")
	if len(items) == 0 {
		muted.Fprintln(r.w, "no tournaments")
		return
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, t := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d teams\n", t.ID, t.Name, t.Gender.DisplayName(), t.DisplayTeamCount())
	}
	_ = tw.Flush()
}

func (r *Renderer) Standings(items []models.TeamStanding) {
	header.Fprintln(r.w, "Standings")
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTeam\tW-L\tPF\tPA\tDIFF\tAVG")
	for i, s := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%+d\t%.1f\n",
			i+1, s.TeamName, s.Record(), s.PointsFor, s.PointsAgainst, s.PointDifferential(), s.Average)
	}
	_ = tw.Flush()
}

func (r *Renderer) GameDays(groups []models.DateGroup, now time.Time) {
	header.Fprintln(r.w, "Games")
	if len(groups) == 0 {
		muted.Fprintln(r.w, "no games")
		return
	}
	for _, group := range groups {
		muted.Fprintln(r.w, group.Date)
		for _, g := range group.Games {
			r.game(g, now)
		}
	}
}

func (r *Renderer) game(g models.Game, now time.Time) {
	home, okHome := g.HomeTeam()
	away, okAway := g.AwayTeam()
	if !okHome || !okAway {
		fmt.Fprintf(r.w, "  #%d %s\n", g.ID, g.Status(now))
		return
	}

	win := g.WinnerIndex()
	fmt.Fprint(r.w, "  ")
	r.side(home, win == 0)
	fmt.Fprint(r.w, " vs ")
	r.side(away, win == 1)
	fmt.Fprintf(r.w, "  [%s]\n", g.Status(now))
}

func (r *Renderer) side(t models.TeamStat, won bool) {
	text := t.TeamName
	if t.Score != nil {
		text += " " + strconv.Itoa(*t.Score)
	}
	if won {
		winner.Fprint(r.w, text)
		return
	}
	fmt.Fprint(r.w, text)
}

func (r *Renderer) TopStats(categories []models.StatCategory) {
	for _, c := range categories {
		header.Fprintln(r.w, c.Name)
		tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
		for i, e := range c.Stats {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, e.Player.FullName(), e.TeamName, e.Score)
		}
		_ = tw.Flush()
	}
}

func (r *Renderer) GameDetail(resp models.GameDetailResponse) {
	g := resp.Game
	header.Fprintf(r.w, "%s %d - %d %s\n", g.Sets.TeamA, g.HomeScore(), g.AwayScore(), g.Sets.TeamB)
	if g.Venue != nil {
		venue := g.Venue.Name
		if g.Venue.CourtNumber != "" {
			venue += " - Court " + g.Venue.CourtNumber
		}
		muted.Fprintln(r.w, venue)
	}

	for _, t := range g.TeamStats {
		fmt.Fprintln(r.w)
		header.Fprintln(r.w, t.TeamName)
		r.boxScore(t, g.ActiveStats, resp.Labels)
	}
}

func (r *Renderer) boxScore(t models.GameDetailTeamStat, keys []string, labels models.StatLabels) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)

	cols := make([]string, 0, len(keys)+1)
	cols = append(cols, "Player")
	for _, k := range keys {
		cols = append(cols, labels.ShortName(k))
	}
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	for _, p := range t.Players() {
		fmt.Fprintln(tw, statRow(p.PlayerShortName, p.DynamicStats, keys))
	}
	if totals, ok := t.Totals(); ok {
		fmt.Fprintln(tw, statRow("Team", totals.DynamicStats, keys))
	}
	_ = tw.Flush()
}

func statRow(name string, stats models.DynamicStats, keys []string) string {
	cells := make([]string, 0, len(keys)+1)
	cells = append(cells, name)
	for _, k := range keys {
		if v, ok := stats.Value(k); ok {
			cells = append(cells, strconv.Itoa(v))
		} else {
			cells = append(cells, "-")
		}
	}
	return strings.Join(cells, "\t")
}

func (r *Renderer) PlayerSeason(resp models.PlayerSeasonDetailResponse) {
	s := resp.Season
	header.Fprintln(r.w, s.Player.FullName())
	line := s.Team
	if s.Number != nil {
		line += fmt.Sprintf(" #%d", *s.Number)
	}
	muted.Fprintln(r.w, line)

	if s.GamesPlayed() == 0 {
		warning.Fprintln(r.w, "no games played")
		return
	}

	for _, key := range []string{"points", "as", "tr"} {
		if avg, ok := s.PerGame(key); ok {
			fmt.Fprintf(r.w, "%s %.1f  ", models.PerGameLabels[key], avg)
		}
	}
	fmt.Fprintln(r.w)

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, k := range s.ActiveStats {
		fmt.Fprintf(tw, "%s\t%d\n", resp.Labels.LongName(k), s.Total(k))
	}
	_ = tw.Flush()
}

func (r *Renderer) TeamSeason(t models.TeamSeasonDetail, now time.Time) {
	if t.UpcomingGame != nil {
		header.Fprintln(r.w, "Next game")
		r.game(*t.UpcomingGame, now)
	}

	header.Fprintln(r.w, "Roster")
	for _, p := range t.Roster {
		number := "  "
		if p.Number != nil && *p.Number > 0 {
			number = strconv.Itoa(*p.Number)
		}
		fmt.Fprintf(r.w, "  %2s %s\n", number, p.Player.FullName())
	}

	for _, c := range t.StatLeaders {
		header.Fprintln(r.w, c.LongName)
		for i, e := range c.Players {
			fmt.Fprintf(r.w, "  %d. %s %s %d %s\n", i+1, e.FirstName, e.LastName, e.Total, c.ShortName)
		}
	}
}
