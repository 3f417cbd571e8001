package models

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// TeamEntryFirstName marks the team-totals pseudo-row in player stat lists.
const TeamEntryFirstName = "Equipo"

type Player struct {
	ID          int64
	FirstName   string
	LastName    string
	Gender      string
	Picture     string
	DateOfBirth string
	Position    string
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Player) Initials() string {
	var b strings.Builder
	for _, part := range []string{p.FirstName, p.LastName} {
		if r, _ := utf8.DecodeRuneInString(part); r != utf8.RuneError {
			b.WriteString(strings.ToUpper(string(r)))
		}
	}
	return b.String()
}

func (p Player) PictureURL(baseURL string) string {
	return ResolveImageURL(baseURL, p.Picture)
}

// PlayerSeason is a roster entry of a team season.
type PlayerSeason struct {
	ID     int64
	Number *int
	Player Player
}

func (p PlayerSeason) ImageURL(baseURL string) string {
	return p.Player.PictureURL(baseURL)
}

type PlayerGameStat struct {
	ID              int64
	PlayerName      string
	PlayerShortName string
	FirstName       string
	LastName        string
	PlayerID        *int64
	Number          *int
	Gender          string
	Image           string
	DynamicStats    DynamicStats
}

func (p PlayerGameStat) IsTeamEntry() bool {
	return p.FirstName == TeamEntryFirstName
}

func (p PlayerGameStat) ImageURL(baseURL string) string {
	return ResolveImageURL(baseURL, p.Image)
}

func IndividualPlayers(rows []PlayerGameStat) []PlayerGameStat {
	out := make([]PlayerGameStat, 0, len(rows))
	for _, row := range rows {
		if !row.IsTeamEntry() {
			out = append(out, row)
		}
	}
	return out
}

func TeamTotals(rows []PlayerGameStat) (PlayerGameStat, bool) {
	for _, row := range rows {
		if row.IsTeamEntry() {
			return row, true
		}
	}
	return PlayerGameStat{}, false
}

// RankByStat returns individual players with a positive value for key,
// highest first. Equal values keep their input order.
func RankByStat(rows []PlayerGameStat, key string) []PlayerGameStat {
	ranked := make([]PlayerGameStat, 0, len(rows))
	for _, row := range IndividualPlayers(rows) {
		if row.DynamicStats.ValueOr(key, 0) > 0 {
			ranked = append(ranked, row)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DynamicStats.ValueOr(key, 0) > ranked[j].DynamicStats.ValueOr(key, 0)
	})
	return ranked
}
