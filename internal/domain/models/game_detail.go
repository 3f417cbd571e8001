package models

import "time"

type GameDetailResponse struct {
	Labels StatLabels
	Game   GameDetail
}

type Venue struct {
	Name        string
	CourtNumber string
}

type GameSets struct {
	TeamAID     int64
	TeamA       string
	TeamALogo   string
	TeamAScore  int
	TeamAScores []int
	TeamBID     int64
	TeamB       string
	TeamBLogo   string
	TeamBScore  int
	TeamBScores []int
}

func (s GameSets) TeamALogoURL(baseURL string) string {
	return ResolveImageURL(baseURL, s.TeamALogo)
}

func (s GameSets) TeamBLogoURL(baseURL string) string {
	return ResolveImageURL(baseURL, s.TeamBLogo)
}

type GameDetailTeamStat struct {
	ID            int64
	TeamName      string
	Score         int
	Result        *string
	TeamLogo      string
	LastFiveGames []*bool
	PlayerStats   []PlayerGameStat
}

func (t GameDetailTeamStat) LogoURL(baseURL string) string {
	return ResolveImageURL(baseURL, t.TeamLogo)
}

func (t GameDetailTeamStat) Players() []PlayerGameStat {
	return IndividualPlayers(t.PlayerStats)
}

func (t GameDetailTeamStat) Totals() (PlayerGameStat, bool) {
	return TeamTotals(t.PlayerStats)
}

type GameDetail struct {
	ID          int64
	Played      bool
	Phase       string
	Round       string
	GameTime    *time.Time
	Stage       bool
	Venue       *Venue
	ActiveStats []string
	Sets        GameSets
	TeamStats   []GameDetailTeamStat
}

func (g GameDetail) HomeTeam() (GameDetailTeamStat, bool) {
	if len(g.TeamStats) < 1 {
		return GameDetailTeamStat{}, false
	}
	return g.TeamStats[0], true
}

func (g GameDetail) AwayTeam() (GameDetailTeamStat, bool) {
	if len(g.TeamStats) < 2 {
		return GameDetailTeamStat{}, false
	}
	return g.TeamStats[1], true
}

// HomeScore falls back to the set summary when team stats are missing.
func (g GameDetail) HomeScore() int {
	if t, ok := g.HomeTeam(); ok {
		return t.Score
	}
	return g.Sets.TeamAScore
}

func (g GameDetail) AwayScore() int {
	if t, ok := g.AwayTeam(); ok {
		return t.Score
	}
	return g.Sets.TeamBScore
}

// RankedPlayers ranks individual players of both teams by key.
func (g GameDetail) RankedPlayers(key string) []PlayerGameStat {
	var rows []PlayerGameStat
	for _, t := range g.TeamStats {
		rows = append(rows, t.PlayerStats...)
	}
	return RankByStat(rows, key)
}
