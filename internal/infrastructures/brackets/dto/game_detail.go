package dto

type GameDetailResponse struct {
	LongNameStats  map[string]string `json:"long_name_stats"`
	ShortNameStats map[string]string `json:"short_name_stats"`
	Game           *GameDetail       `json:"game" validate:"required"`
}

type Venue struct {
	Name        string        `json:"name"`
	CourtNumber *TextOrNumber `json:"court_number"`
}

type GameSets struct {
	TeamAID     int64   `json:"team_a_id"`
	TeamA       string  `json:"team_a"`
	TeamALogo   *string `json:"team_a_logo"`
	TeamAScore  int     `json:"team_a_score"`
	TeamAScores []int   `json:"team_a_scores"`
	TeamBID     int64   `json:"team_b_id"`
	TeamB       string  `json:"team_b"`
	TeamBLogo   *string `json:"team_b_logo"`
	TeamBScore  int     `json:"team_b_score"`
	TeamBScores []int   `json:"team_b_scores"`
}

type GameDetailTeamStat struct {
	ID            int64            `json:"id" validate:"required"`
	TeamName      string           `json:"team_name" validate:"required"`
	Score         int              `json:"score"`
	Result        *string          `json:"result"`
	TeamLogo      *string          `json:"team_logo"`
	LastFiveGames []*Flag          `json:"last_five_games"`
	PlayerStats   []PlayerGameStat `json:"player_stats" validate:"dive"`
}

type GameDetail struct {
	ID          int64                `json:"id" validate:"required"`
	Played      bool                 `json:"played"`
	Phase       *TextOrNumber        `json:"phase"`
	Round       *TextOrNumber        `json:"round"`
	GameTime    *Timestamp           `json:"game_time"`
	Stage       bool                 `json:"stage"`
	Venue       *Venue               `json:"venue"`
	ActiveStats []string             `json:"active_stats"`
	GameSets    GameSets             `json:"game_sets"`
	TeamStats   []GameDetailTeamStat `json:"team_stats" validate:"dive"`
}

func UnmarshalGameDetail(raw []byte) (GameDetailResponse, error) {
	return unmarshalObject[GameDetailResponse](raw)
}
