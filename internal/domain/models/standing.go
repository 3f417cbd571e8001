package models

import "fmt"

type TeamStanding struct {
	ID            int64
	TeamName      string
	Total         int
	Wins          int
	Losses        int
	Ties          int
	PointsFor     int
	PointsAgainst int
	Average       float64
	Tiebreaker    string
	TeamLogo      string
}

func (s TeamStanding) PointDifferential() int {
	return s.PointsFor - s.PointsAgainst
}

func (s TeamStanding) Record() string {
	return fmt.Sprintf("%d-%d", s.Wins, s.Losses)
}

func (s TeamStanding) LogoURL(baseURL string) string {
	return ResolveImageURL(baseURL, s.TeamLogo)
}
