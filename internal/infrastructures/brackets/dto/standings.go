package dto

type TeamStanding struct {
	TeamSeasonID int64           `json:"team_season_id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Total        int             `json:"total"`
	Won          int             `json:"won"`
	Lost         int             `json:"lost"`
	Tie          int             `json:"tie"`
	Favor        int             `json:"favor"`
	Against      int             `json:"against"`
	Avg          *FlexibleNumber `json:"avg"`
	TieBreaker   *TextOrNumber   `json:"tie_breaker"`
	TeamLogo     *string         `json:"team_logo"`
}

func UnmarshalStandings(raw []byte) ([]TeamStanding, error) {
	return unmarshalList[TeamStanding](raw, "standings")
}
