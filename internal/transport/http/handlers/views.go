package handlers

import (
	"time"

	"github.com/ozzus/brackets/internal/application/service"
	"github.com/ozzus/brackets/internal/domain/models"
)

// viewer renders domain values with their derived fields resolved against
// the current base URL and clock.
type viewer struct {
	baseURL string
	now     time.Time
}

type tournamentView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	GenderTag string `json:"gender_label"`
	TeamCount int    `json:"team_count"`
	ImageURL  string `json:"image_url,omitempty"`
}

func (v viewer) tournaments(items []models.Tournament) []tournamentView {
	out := make([]tournamentView, 0, len(items))
	for _, t := range items {
		out = append(out, tournamentView{
			ID:        t.ID,
			Name:      t.Name,
			Gender:    t.Gender.String(),
			GenderTag: t.Gender.DisplayName(),
			TeamCount: t.DisplayTeamCount(),
			ImageURL:  t.ImageURL(v.baseURL),
		})
	}
	return out
}

type teamStatView struct {
	ID       int64   `json:"id"`
	TeamName string  `json:"team_name"`
	Score    *int    `json:"score"`
	Result   *string `json:"result"`
	LogoURL  string  `json:"logo_url,omitempty"`
}

type gameView struct {
	ID        int64          `json:"id"`
	GameTime  *time.Time     `json:"game_time"`
	Stage     bool           `json:"stage"`
	Status    string         `json:"status"`
	WinnerID  *int64         `json:"winner_id"`
	HomeScore *int           `json:"home_score"`
	AwayScore *int           `json:"away_score"`
	Teams     []teamStatView `json:"teams"`
}

func (v viewer) game(g models.Game) gameView {
	out := gameView{
		ID:        g.ID,
		GameTime:  g.GameTime,
		Stage:     g.Stage,
		Status:    string(g.Status(v.now)),
		HomeScore: g.HomeScore(),
		AwayScore: g.AwayScore(),
		Teams:     make([]teamStatView, 0, len(g.TeamStats)),
	}
	if winner, ok := g.Winner(); ok {
		id := winner.ID
		out.WinnerID = &id
	}
	for _, ts := range g.TeamStats {
		out.Teams = append(out.Teams, teamStatView{
			ID:       ts.ID,
			TeamName: ts.TeamName,
			Score:    ts.Score,
			Result:   ts.Result,
			LogoURL:  ts.LogoURL(v.baseURL),
		})
	}
	return out
}

func (v viewer) games(items []models.Game) []gameView {
	out := make([]gameView, 0, len(items))
	for _, g := range items {
		out = append(out, v.game(g))
	}
	return out
}

type gameDayView struct {
	Date  string     `json:"date"`
	Games []gameView `json:"games"`
}

func (v viewer) gameDays(groups []models.DateGroup) []gameDayView {
	out := make([]gameDayView, 0, len(groups))
	for _, group := range groups {
		out = append(out, gameDayView{Date: group.Date, Games: v.games(group.Games)})
	}
	return out
}

type standingView struct {
	ID                int64   `json:"id"`
	TeamName          string  `json:"team_name"`
	Total             int     `json:"total"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Ties              int     `json:"ties"`
	PointsFor         int     `json:"points_for"`
	PointsAgainst     int     `json:"points_against"`
	PointDifferential int     `json:"point_differential"`
	Record            string  `json:"record"`
	Average           float64 `json:"average"`
	Tiebreaker        string  `json:"tiebreaker,omitempty"`
	LogoURL           string  `json:"logo_url,omitempty"`
}

func (v viewer) standings(items []models.TeamStanding) []standingView {
	out := make([]standingView, 0, len(items))
	for _, s := range items {
		out = append(out, standingView{
			ID:                s.ID,
			TeamName:          s.TeamName,
			Total:             s.Total,
			Wins:              s.Wins,
			Losses:            s.Losses,
			Ties:              s.Ties,
			PointsFor:         s.PointsFor,
			PointsAgainst:     s.PointsAgainst,
			PointDifferential: s.PointDifferential(),
			Record:            s.Record(),
			Average:           s.Average,
			Tiebreaker:        s.Tiebreaker,
			LogoURL:           s.LogoURL(v.baseURL),
		})
	}
	return out
}

type playerView struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Initials   string `json:"initials"`
	Position   string `json:"position,omitempty"`
	PictureURL string `json:"picture_url,omitempty"`
}

func (v viewer) player(p models.Player) playerView {
	return playerView{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		FullName:   p.FullName(),
		Initials:   p.Initials(),
		Position:   p.Position,
		PictureURL: p.PictureURL(v.baseURL),
	}
}

type statEntryView struct {
	Player         playerView `json:"player"`
	TeamName       string     `json:"team_name"`
	TeamLogoURL    string     `json:"team_logo_url,omitempty"`
	Score          int        `json:"score"`
	PlayerSeasonID int64      `json:"player_season_id"`
}

type statCategoryView struct {
	Name  string          `json:"name"`
	Stats []statEntryView `json:"stats"`
}

func (v viewer) topStats(items []models.StatCategory) []statCategoryView {
	out := make([]statCategoryView, 0, len(items))
	for _, c := range items {
		cv := statCategoryView{Name: c.Name, Stats: make([]statEntryView, 0, len(c.Stats))}
		for _, e := range c.Stats {
			cv.Stats = append(cv.Stats, statEntryView{
				Player:         v.player(e.Player),
				TeamName:       e.TeamName,
				TeamLogoURL:    e.TeamLogoURL(v.baseURL),
				Score:          e.Score,
				PlayerSeasonID: e.PlayerSeasonID,
			})
		}
		out = append(out, cv)
	}
	return out
}

type overviewView struct {
	Standings []standingView     `json:"standings"`
	GameDays  []gameDayView      `json:"game_days"`
	TopStats  []statCategoryView `json:"top_stats"`
}

func (v viewer) overview(o service.TournamentOverview) overviewView {
	return overviewView{
		Standings: v.standings(o.Standings),
		GameDays:  v.gameDays(o.GameDays),
		TopStats:  v.topStats(o.TopStats),
	}
}

type statColumnView struct {
	Key       string `json:"key"`
	LongName  string `json:"long_name"`
	ShortName string `json:"short_name"`
}

func columns(keys []string, labels models.StatLabels) []statColumnView {
	out := make([]statColumnView, 0, len(keys))
	for _, k := range keys {
		out = append(out, statColumnView{Key: k, LongName: labels.LongName(k), ShortName: labels.ShortName(k)})
	}
	return out
}

type boxScoreRowView struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Short    string         `json:"short_name"`
	Number   *int           `json:"number"`
	ImageURL string         `json:"image_url,omitempty"`
	Stats    map[string]int `json:"stats"`
}

func (v viewer) boxScoreRow(p models.PlayerGameStat, keys []string) boxScoreRowView {
	stats := make(map[string]int, len(keys))
	for _, k := range keys {
		if value, ok := p.DynamicStats.Value(k); ok {
			stats[k] = value
		}
	}
	return boxScoreRowView{
		ID:       p.ID,
		Name:     p.PlayerName,
		Short:    p.PlayerShortName,
		Number:   p.Number,
		ImageURL: p.ImageURL(v.baseURL),
		Stats:    stats,
	}
}

type detailTeamView struct {
	ID            int64             `json:"id"`
	TeamName      string            `json:"team_name"`
	Score         int               `json:"score"`
	Result        *string           `json:"result"`
	LogoURL       string            `json:"logo_url,omitempty"`
	LastFiveGames []*bool           `json:"last_five_games"`
	Players       []boxScoreRowView `json:"players"`
	Totals        *boxScoreRowView  `json:"totals"`
}

type venueView struct {
	Name        string `json:"name"`
	CourtNumber string `json:"court_number,omitempty"`
}

type gameDetailView struct {
	ID        int64            `json:"id"`
	Played    bool             `json:"played"`
	Phase     string           `json:"phase,omitempty"`
	Round     string           `json:"round,omitempty"`
	GameTime  *time.Time       `json:"game_time"`
	Venue     *venueView       `json:"venue,omitempty"`
	HomeScore int              `json:"home_score"`
	AwayScore int              `json:"away_score"`
	TeamASets []int            `json:"team_a_sets,omitempty"`
	TeamBSets []int            `json:"team_b_sets,omitempty"`
	Columns   []statColumnView `json:"columns"`
	Teams     []detailTeamView `json:"teams"`
}

func (v viewer) gameDetail(resp models.GameDetailResponse) gameDetailView {
	g := resp.Game
	out := gameDetailView{
		ID:        g.ID,
		Played:    g.Played,
		Phase:     g.Phase,
		Round:     g.Round,
		GameTime:  g.GameTime,
		HomeScore: g.HomeScore(),
		AwayScore: g.AwayScore(),
		TeamASets: g.Sets.TeamAScores,
		TeamBSets: g.Sets.TeamBScores,
		Columns:   columns(g.ActiveStats, resp.Labels),
	}
	if g.Venue != nil {
		out.Venue = &venueView{Name: g.Venue.Name, CourtNumber: g.Venue.CourtNumber}
	}
	for _, t := range g.TeamStats {
		tv := detailTeamView{
			ID:            t.ID,
			TeamName:      t.TeamName,
			Score:         t.Score,
			Result:        t.Result,
			LogoURL:       t.LogoURL(v.baseURL),
			LastFiveGames: t.LastFiveGames,
		}
		for _, p := range t.Players() {
			tv.Players = append(tv.Players, v.boxScoreRow(p, g.ActiveStats))
		}
		if totals, ok := t.Totals(); ok {
			row := v.boxScoreRow(totals, g.ActiveStats)
			tv.Totals = &row
		}
		out.Teams = append(out.Teams, tv)
	}
	return out
}

type seasonGameView struct {
	ID              int64          `json:"id"`
	Opponent        string         `json:"opponent"`
	OpponentLogoURL string         `json:"opponent_logo_url,omitempty"`
	Stats           map[string]int `json:"stats"`
}

type playerSeasonView struct {
	Player      playerView         `json:"player"`
	Team        string             `json:"team"`
	Number      *int               `json:"number"`
	Weight      string             `json:"weight,omitempty"`
	Height      string             `json:"height,omitempty"`
	GamesPlayed int                `json:"games_played"`
	Columns     []statColumnView   `json:"columns"`
	Totals      map[string]int     `json:"totals"`
	PerGame     map[string]float64 `json:"per_game"`
	Games       []seasonGameView   `json:"games"`
	Playoffs    []seasonGameView   `json:"playoffs"`
}

func (v viewer) playerSeason(resp models.PlayerSeasonDetailResponse) playerSeasonView {
	s := resp.Season
	out := playerSeasonView{
		Player:      v.player(s.Player),
		Team:        s.Team,
		Number:      s.Number,
		Weight:      s.Weight,
		Height:      s.Height,
		GamesPlayed: s.GamesPlayed(),
		Columns:     columns(s.ActiveStats, resp.Labels),
		Totals:      make(map[string]int, len(s.ActiveStats)),
		PerGame:     make(map[string]float64, len(models.PerGameLabels)),
		Games:       v.seasonGames(s.Stats, s.ActiveStats),
		Playoffs:    v.seasonGames(s.PlayoffsStats, s.ActiveStats),
	}
	for _, k := range s.ActiveStats {
		out.Totals[k] = s.Total(k)
	}
	for key, label := range models.PerGameLabels {
		if avg, ok := s.PerGame(key); ok {
			out.PerGame[label] = avg
		}
	}
	return out
}

func (v viewer) seasonGames(rows []models.PlayerSeasonGameStat, keys []string) []seasonGameView {
	out := make([]seasonGameView, 0, len(rows))
	for _, r := range rows {
		stats := make(map[string]int, len(keys))
		for _, k := range keys {
			if value, ok := r.DynamicStats.Value(k); ok {
				stats[k] = value
			}
		}
		out = append(out, seasonGameView{
			ID:              r.ID,
			Opponent:        r.Opponent,
			OpponentLogoURL: r.OpponentLogoURL(v.baseURL),
			Stats:           stats,
		})
	}
	return out
}

type rosterView struct {
	PlayerSeasonID int64      `json:"player_season_id"`
	Number         *int       `json:"number"`
	Player         playerView `json:"player"`
}

type leaderView struct {
	PlayerSeasonID int64  `json:"player_season_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Total          int    `json:"total"`
	ImageURL       string `json:"image_url,omitempty"`
}

type leaderCategoryView struct {
	Key       string       `json:"key"`
	LongName  string       `json:"long_name"`
	ShortName string       `json:"short_name"`
	Players   []leaderView `json:"players"`
}

type teamSeasonView struct {
	Games        []gameView           `json:"games"`
	UpcomingGame *gameView            `json:"upcoming_game"`
	Roster       []rosterView         `json:"roster"`
	StatLeaders  []leaderCategoryView `json:"stat_leaders"`
}

func (v viewer) teamSeason(t models.TeamSeasonDetail) teamSeasonView {
	out := teamSeasonView{
		Games:       v.games(t.Games),
		Roster:      make([]rosterView, 0, len(t.Roster)),
		StatLeaders: make([]leaderCategoryView, 0, len(t.StatLeaders)),
	}
	if t.UpcomingGame != nil {
		g := v.game(*t.UpcomingGame)
		out.UpcomingGame = &g
	}
	for _, p := range t.Roster {
		out.Roster = append(out.Roster, rosterView{PlayerSeasonID: p.ID, Number: p.Number, Player: v.player(p.Player)})
	}
	for _, c := range t.StatLeaders {
		cv := leaderCategoryView{Key: c.Key, LongName: c.LongName, ShortName: c.ShortName}
		for _, e := range c.Players {
			cv.Players = append(cv.Players, leaderView{
				PlayerSeasonID: e.PlayerSeasonID,
				FirstName:      e.FirstName,
				LastName:       e.LastName,
				Total:          e.Total,
				ImageURL:       e.ImageURL(v.baseURL),
			})
		}
		out.StatLeaders = append(out.StatLeaders, cv)
	}
	return out
}
