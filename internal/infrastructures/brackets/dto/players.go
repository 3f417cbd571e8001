package dto

type Player struct {
	ID        int64         `json:"id" validate:"required"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Gender    *TextOrNumber `json:"gender"`
	Picture   *string       `json:"picture"`
	DOB       *string       `json:"dob"`
	Position  *string       `json:"position"`
}

// PlayerGameStat is one row of a team's box score. DynamicStats values may
// be null.
type PlayerGameStat struct {
	ID              int64           `json:"id" validate:"required"`
	PlayerName      string          `json:"player_name"`
	PlayerShortName string          `json:"player_short_name"`
	PlayerFirstName string          `json:"player_first_name"`
	PlayerLastName  string          `json:"player_last_name"`
	PlayerID        *int64          `json:"player_id"`
	PlayerNumber    *int            `json:"player_number"`
	PlayerGender    *TextOrNumber   `json:"player_gender"`
	PlayerImage     *string         `json:"player_image"`
	DynamicStats    map[string]*int `json:"dynamic_stats"`
}
