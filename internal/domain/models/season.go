package models

// PerGameLabels names the per-game averages shown on a player's season card.
var PerGameLabels = map[string]string{
	"points": "PPG",
	"as":     "APG",
	"tr":     "RPG",
}

type PlayerSeasonDetailResponse struct {
	Labels StatLabels
	Season PlayerSeasonInfo
}

type PlayerSeasonGameStat struct {
	ID           int64
	Opponent     string
	OpponentLogo string
	DynamicStats DynamicStats
}

func (s PlayerSeasonGameStat) OpponentLogoURL(baseURL string) string {
	return ResolveImageURL(baseURL, s.OpponentLogo)
}

type PlayerSeasonInfo struct {
	Weight        string
	Height        string
	Number        *int
	Team          string
	Player        Player
	ActiveStats   []string
	Stats         []PlayerSeasonGameStat
	PlayoffsStats []PlayerSeasonGameStat
}

func (p PlayerSeasonInfo) GamesPlayed() int {
	return len(p.Stats)
}

// Total sums key over regular-season games; missing values count as zero.
func (p PlayerSeasonInfo) Total(key string) int {
	return sumStat(p.Stats, key)
}

func (p PlayerSeasonInfo) PlayoffsTotal(key string) int {
	return sumStat(p.PlayoffsStats, key)
}

func (p PlayerSeasonInfo) PerGame(key string) (float64, bool) {
	games := p.GamesPlayed()
	if games == 0 {
		return 0, false
	}
	return float64(p.Total(key)) / float64(games), true
}

func sumStat(rows []PlayerSeasonGameStat, key string) int {
	total := 0
	for _, row := range rows {
		total += row.DynamicStats.ValueOr(key, 0)
	}
	return total
}

type TeamSeasonDetail struct {
	Games        []Game
	Roster       []PlayerSeason
	UpcomingGame *Game
	StatLeaders  []StatLeaderCategory
}

func (t TeamSeasonDetail) NonEmptyStatLeaders() []StatLeaderCategory {
	out := make([]StatLeaderCategory, 0, len(t.StatLeaders))
	for _, c := range t.StatLeaders {
		if len(c.Players) > 0 {
			out = append(out, c)
		}
	}
	return out
}
