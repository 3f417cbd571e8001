package dto

type Tournament struct {
	ID        int64   `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Gender    int     `json:"gender" validate:"oneof=0 1"`
	TeamCount *int    `json:"team_count"`
	Image     *string `json:"image"`
}

func UnmarshalTournaments(raw []byte) ([]Tournament, error) {
	return unmarshalList[Tournament](raw, "tournaments")
}
