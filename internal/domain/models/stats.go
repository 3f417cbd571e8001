package models

import (
	"sort"
	"strings"
)

// DynamicStats maps a stat key to its value; a nil value and a missing key
// both mean "no value".
type DynamicStats map[string]*int

func (d DynamicStats) Value(key string) (int, bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

func (d DynamicStats) ValueOr(key string, def int) int {
	if v, ok := d.Value(key); ok {
		return v
	}
	return def
}

// StatLabels holds the backend's long and short display names per stat key.
type StatLabels struct {
	Long  map[string]string
	Short map[string]string
}

func (l StatLabels) LongName(key string) string {
	if name, ok := l.Long[key]; ok && name != "" {
		return name
	}
	return strings.ToUpper(key)
}

func (l StatLabels) ShortName(key string) string {
	if name, ok := l.Short[key]; ok && name != "" {
		return name
	}
	return strings.ToUpper(key)
}

type StatCategory struct {
	Name  string
	Stats []PlayerStatEntry
}

type PlayerStatEntry struct {
	ID             int64
	Player         Player
	TeamName       string
	TeamLogo       string
	Score          int
	PlayerSeasonID int64
}

func (e PlayerStatEntry) TeamLogoURL(baseURL string) string {
	return ResolveImageURL(baseURL, e.TeamLogo)
}

func ActiveCategories(categories []StatCategory) []StatCategory {
	out := make([]StatCategory, 0, len(categories))
	for _, c := range categories {
		if len(c.Stats) > 0 {
			out = append(out, c)
		}
	}
	return out
}

type StatLeaderCategory struct {
	Key       string
	LongName  string
	ShortName string
	Players   []StatLeaderEntry
}

type StatLeaderEntry struct {
	PlayerSeasonID int64
	FirstName      string
	LastName       string
	Total          int
	Image          string
}

func (e StatLeaderEntry) ImageURL(baseURL string) string {
	return ResolveImageURL(baseURL, e.Image)
}

// SortStatLeaders orders categories by key; used for map-encoded payloads
// which carry no order of their own.
func SortStatLeaders(categories []StatLeaderCategory) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Key < categories[j].Key
	})
}
