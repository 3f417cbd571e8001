package dto

type PlayerSeasonDetailResponse struct {
	LongNameStats  map[string]string `json:"long_name_stats"`
	ShortNameStats map[string]string `json:"short_name_stats"`
	PlayerSeason   *PlayerSeasonInfo `json:"player_season" validate:"required"`
}

type PlayerSeasonInfo struct {
	Weight        *TextOrNumber          `json:"weight"`
	Height        *TextOrNumber          `json:"height"`
	Number        *int                   `json:"number"`
	Team          string                 `json:"team" validate:"required"`
	Player        *Player                `json:"player" validate:"required"`
	ActiveStats   []string               `json:"active_stats"`
	Stats         []PlayerSeasonGameStat `json:"stats" validate:"dive"`
	PlayoffsStats []PlayerSeasonGameStat `json:"playoffs_stats" validate:"dive"`
}

type PlayerSeasonGameStat struct {
	ID           int64           `json:"id" validate:"required"`
	Opponent     string          `json:"opponent"`
	OpponentLogo *string         `json:"opponent_logo"`
	DynamicStats map[string]*int `json:"dynamic_stats"`
}

func UnmarshalPlayerSeason(raw []byte) (PlayerSeasonDetailResponse, error) {
	return unmarshalObject[PlayerSeasonDetailResponse](raw)
}
