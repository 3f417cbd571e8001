package dto

// PlayerStatEntry covers both leaderboard revisions: the current one sends
// a nested player and "score", the older one flat player fields and "value".
type PlayerStatEntry struct {
	ID             int64           `json:"id"`
	Player         *Player         `json:"player"`
	PlayerID       int64           `json:"player_id"`
	PlayerName     string          `json:"player_name"`
	TeamName       string          `json:"team_name" validate:"required"`
	TeamLogo       *string         `json:"team_logo"`
	Score          *FlexibleNumber `json:"score" validate:"required_without=Value"`
	Value          *FlexibleNumber `json:"value"`
	PlayerSeasonID int64           `json:"player_season_id"`
}

type StatCategory struct {
	Name        string            `json:"name" validate:"required_without_all=Category DisplayName"`
	Category    string            `json:"category"`
	DisplayName string            `json:"display_name"`
	Unit        string            `json:"unit"`
	Stats       []PlayerStatEntry `json:"stats" validate:"dive"`
	Leaders     []PlayerStatEntry `json:"leaders" validate:"dive"`
}

func UnmarshalTopStats(raw []byte) ([]StatCategory, error) {
	return unmarshalList[StatCategory](raw, "top_stats")
}
