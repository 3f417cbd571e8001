package dto

type TeamStat struct {
	ID       int64   `json:"id" validate:"required"`
	Score    *int    `json:"score"`
	Result   *string `json:"result"`
	TeamName string  `json:"team_name" validate:"required"`
	TeamLogo *string `json:"team_logo"`
}

type Game struct {
	ID        int64      `json:"id" validate:"required"`
	GameTime  *Timestamp `json:"game_time"`
	Stage     bool       `json:"stage"`
	TeamStats []TeamStat `json:"team_stats" validate:"dive"`
}

type DateGroup struct {
	Date  string `json:"date" validate:"required"`
	Games []Game `json:"games" validate:"dive"`
}

type GamesResponse struct {
	Games []DateGroup `json:"games" validate:"required,dive"`
}

// UnmarshalGamesResponse decodes the date-grouped games payload. Only the
// enveloped form exists for it.
func UnmarshalGamesResponse(raw []byte) (GamesResponse, error) {
	return unmarshalObject[GamesResponse](raw)
}

// UnmarshalGames decodes the flat games payload: {"games": [...]} or [...].
func UnmarshalGames(raw []byte) ([]Game, error) {
	return unmarshalList[Game](raw, "games")
}
