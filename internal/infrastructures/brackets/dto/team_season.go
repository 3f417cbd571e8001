package dto

import (
	"encoding/json"
	"reflect"
	"sort"
)

var statLeadersType = reflect.TypeOf(StatLeaders{})

type TeamSeasonResponse struct {
	LongNameStats  map[string]string `json:"long_name_stats"`
	ShortNameStats map[string]string `json:"short_name_stats"`
	TeamSeason     *TeamSeasonDetail `json:"team_season" validate:"required"`
}

type TeamSeasonDetail struct {
	Games         []Game         `json:"games" validate:"dive"`
	PlayerSeasons []PlayerSeason `json:"player_seasons" validate:"dive"`
	UpcomingGame  *Game          `json:"upcoming_game"`
	StatLeaders   StatLeaders    `json:"stat_leaders"`
}

type PlayerSeason struct {
	ID     int64   `json:"id" validate:"required"`
	Number *int    `json:"number"`
	Player *Player `json:"player" validate:"required"`
}

type StatLeaderEntry struct {
	ID             int64           `json:"id"`
	PlayerSeasonID int64           `json:"player_season_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Player         *Player         `json:"player"`
	Total          *FlexibleNumber `json:"total"`
	Picture        *string         `json:"picture"`
	Image          *string         `json:"image"`
}

type StatLeaderCategory struct {
	Key       string            `json:"key"`
	Name      string            `json:"name"`
	LongName  string            `json:"long_name"`
	ShortName string            `json:"short_name"`
	Players   []StatLeaderEntry `json:"players"`
	Leaders   []StatLeaderEntry `json:"leaders"`
}

// StatLeaders accepts both observed encodings of a team's stat leaders: a
// list of categories, or an object keyed by stat name. Map input is sorted
// by key since it has no order of its own.
type StatLeaders struct {
	Categories []StatLeaderCategory
	FromMap    bool
}

func (s *StatLeaders) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case 'n':
		return nil
	case '[':
		var list []StatLeaderCategory
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		s.Categories = list
		s.FromMap = false
		return nil
	case '{':
		var byName map[string][]StatLeaderEntry
		if err := json.Unmarshal(data, &byName); err != nil {
			return err
		}
		keys := make([]string, 0, len(byName))
		for k := range byName {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		s.Categories = make([]StatLeaderCategory, 0, len(keys))
		for _, k := range keys {
			s.Categories = append(s.Categories, StatLeaderCategory{Key: k, Players: byName[k]})
		}
		s.FromMap = true
		return nil
	default:
		return &json.UnmarshalTypeError{Value: describeJSON(data), Type: statLeadersType}
	}
}

func UnmarshalTeamSeason(raw []byte) (TeamSeasonResponse, error) {
	return unmarshalObject[TeamSeasonResponse](raw)
}
