package models

import "strings"

type Gender int

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// DisplayName is the label the backend audience expects.
func (g Gender) DisplayName() string {
	switch g {
	case GenderMale:
		return "Varonil"
	case GenderFemale:
		return "Femenil"
	default:
		return ""
	}
}

func ParseGender(value string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male", "varonil", "0":
		return GenderMale, true
	case "female", "femenil", "1":
		return GenderFemale, true
	default:
		return 0, false
	}
}

type Tournament struct {
	ID        int64
	Name      string
	Gender    Gender
	TeamCount *int
	Image     string
}

func (t Tournament) DisplayTeamCount() int {
	if t.TeamCount == nil {
		return 0
	}
	return *t.TeamCount
}

func (t Tournament) ImageURL(baseURL string) string {
	return ResolveImageURL(baseURL, t.Image)
}

func FilterTournamentsByGender(tournaments []Tournament, gender Gender) []Tournament {
	out := make([]Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.Gender == gender {
			out = append(out, t)
		}
	}
	return out
}
