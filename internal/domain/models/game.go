package models

import "time"

type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusFinished   GameStatus = "finished"
	GameStatusCancelled  GameStatus = "cancelled"
)

// ResultWon is the literal the backend writes into a winning team's result.
const ResultWon = "Won"

type TeamStat struct {
	ID       int64
	Score    *int
	Result   *string
	TeamName string
	TeamLogo string
}

func (t TeamStat) LogoURL(baseURL string) string {
	return ResolveImageURL(baseURL, t.TeamLogo)
}

func (t TeamStat) Won() bool {
	return t.Result != nil && *t.Result == ResultWon
}

// Game keeps teams in wire order: index 0 is home, index 1 is away.
type Game struct {
	ID        int64
	GameTime  *time.Time
	Stage     bool
	TeamStats []TeamStat
}

func (g Game) IsFinished() bool {
	for _, ts := range g.TeamStats {
		if ts.Result != nil {
			return true
		}
	}
	return false
}

// Status is derived, never cancelled: a recorded result wins over the clock.
func (g Game) Status(now time.Time) GameStatus {
	if g.IsFinished() {
		return GameStatusFinished
	}
	if g.GameTime != nil && g.GameTime.Before(now) {
		return GameStatusInProgress
	}
	return GameStatusScheduled
}

func (g Game) HomeTeam() (TeamStat, bool) {
	return g.teamAt(0)
}

func (g Game) AwayTeam() (TeamStat, bool) {
	return g.teamAt(1)
}

func (g Game) HomeScore() *int {
	t, ok := g.HomeTeam()
	if !ok {
		return nil
	}
	return t.Score
}

func (g Game) AwayScore() *int {
	t, ok := g.AwayTeam()
	if !ok {
		return nil
	}
	return t.Score
}

// Winner prefers an explicit "Won" result, then the strictly higher score
// of the first two teams. Ties and missing scores yield no winner.
func (g Game) Winner() (TeamStat, bool) {
	idx := g.WinnerIndex()
	if idx < 0 {
		return TeamStat{}, false
	}
	return g.TeamStats[idx], true
}

// WinnerIndex does not consult the clock: a game without result markers but
// with unequal scores has a winner even while its status is in progress.
func (g Game) WinnerIndex() int {
	for i, ts := range g.TeamStats {
		if ts.Won() {
			return i
		}
	}

	home, okHome := g.HomeTeam()
	away, okAway := g.AwayTeam()
	if !okHome || !okAway || home.Score == nil || away.Score == nil {
		return -1
	}

	switch {
	case *home.Score > *away.Score:
		return 0
	case *away.Score > *home.Score:
		return 1
	default:
		return -1
	}
}

func (g Game) teamAt(i int) (TeamStat, bool) {
	if i >= len(g.TeamStats) {
		return TeamStat{}, false
	}
	return g.TeamStats[i], true
}

type DateGroup struct {
	Date  string
	Games []Game
}

type GamesResponse struct {
	Groups []DateGroup
}

func (r GamesResponse) Flatten() []Game {
	var out []Game
	for _, g := range r.Groups {
		out = append(out, g.Games...)
	}
	return out
}

type GameFilter string

const (
	GameFilterAll       GameFilter = "all"
	GameFilterUpcoming  GameFilter = "upcoming"
	GameFilterCompleted GameFilter = "completed"
)

func ParseGameFilter(value string) (GameFilter, bool) {
	switch GameFilter(value) {
	case "", GameFilterAll:
		return GameFilterAll, true
	case GameFilterUpcoming, GameFilterCompleted:
		return GameFilter(value), true
	default:
		return "", false
	}
}

// FilterGameDays keeps group order and drops groups left empty.
func FilterGameDays(groups []DateGroup, filter GameFilter) []DateGroup {
	if filter == GameFilterAll || filter == "" {
		return groups
	}

	out := make([]DateGroup, 0, len(groups))
	for _, group := range groups {
		games := make([]Game, 0, len(group.Games))
		for _, g := range group.Games {
			if g.IsFinished() == (filter == GameFilterCompleted) {
				games = append(games, g)
			}
		}
		if len(games) > 0 {
			out = append(out, DateGroup{Date: group.Date, Games: games})
		}
	}
	return out
}
