package mappers

import (
	"strings"

	"github.com/ozzus/brackets/internal/domain/models"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/dto"
)

func ToDomainTournaments(items []dto.Tournament) []models.Tournament {
	out := make([]models.Tournament, 0, len(items))
	for _, t := range items {
		out = append(out, models.Tournament{
			ID:        t.ID,
			Name:      t.Name,
			Gender:    models.Gender(t.Gender),
			TeamCount: t.TeamCount,
			Image:     stringValue(t.Image),
		})
	}
	return out
}

func ToDomainGame(g dto.Game) models.Game {
	stats := make([]models.TeamStat, 0, len(g.TeamStats))
	for _, ts := range g.TeamStats {
		stats = append(stats, models.TeamStat{
			ID:       ts.ID,
			Score:    ts.Score,
			Result:   ts.Result,
			TeamName: ts.TeamName,
			TeamLogo: stringValue(ts.TeamLogo),
		})
	}

	return models.Game{
		ID:        g.ID,
		GameTime:  g.GameTime.TimePtr(),
		Stage:     g.Stage,
		TeamStats: stats,
	}
}

func ToDomainGames(items []dto.Game) []models.Game {
	out := make([]models.Game, 0, len(items))
	for _, g := range items {
		out = append(out, ToDomainGame(g))
	}
	return out
}

func ToDomainGamesResponse(resp dto.GamesResponse) models.GamesResponse {
	groups := make([]models.DateGroup, 0, len(resp.Games))
	for _, group := range resp.Games {
		groups = append(groups, models.DateGroup{
			Date:  group.Date,
			Games: ToDomainGames(group.Games),
		})
	}
	return models.GamesResponse{Groups: groups}
}

func ToDomainStandings(items []dto.TeamStanding) []models.TeamStanding {
	out := make([]models.TeamStanding, 0, len(items))
	for _, s := range items {
		standing := models.TeamStanding{
			ID:            s.TeamSeasonID,
			TeamName:      s.Name,
			Total:         s.Total,
			Wins:          s.Won,
			Losses:        s.Lost,
			Ties:          s.Tie,
			PointsFor:     s.Favor,
			PointsAgainst: s.Against,
			Tiebreaker:    s.TieBreaker.String(),
			TeamLogo:      stringValue(s.TeamLogo),
		}
		if s.Avg != nil {
			standing.Average = s.Avg.Float64()
		}
		out = append(out, standing)
	}
	return out
}

func ToDomainPlayer(p *dto.Player) models.Player {
	if p == nil {
		return models.Player{}
	}
	return models.Player{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Gender:      p.Gender.String(),
		Picture:     stringValue(p.Picture),
		DateOfBirth: stringValue(p.DOB),
		Position:    stringValue(p.Position),
	}
}

// ToDomainTopStats normalizes both leaderboard revisions into categories
// with a name and ordered entries.
func ToDomainTopStats(items []dto.StatCategory) []models.StatCategory {
	out := make([]models.StatCategory, 0, len(items))
	for _, c := range items {
		entries := c.Stats
		if len(entries) == 0 {
			entries = c.Leaders
		}

		stats := make([]models.PlayerStatEntry, 0, len(entries))
		for _, e := range entries {
			stats = append(stats, toDomainStatEntry(e))
		}

		out = append(out, models.StatCategory{
			Name:  firstNonEmpty(c.Name, c.DisplayName, c.Category),
			Stats: stats,
		})
	}
	return out
}

func toDomainStatEntry(e dto.PlayerStatEntry) models.PlayerStatEntry {
	entry := models.PlayerStatEntry{
		ID:             e.ID,
		TeamName:       e.TeamName,
		TeamLogo:       stringValue(e.TeamLogo),
		PlayerSeasonID: e.PlayerSeasonID,
	}

	if e.Player != nil {
		entry.Player = ToDomainPlayer(e.Player)
	} else {
		first, last := splitName(e.PlayerName)
		entry.Player = models.Player{ID: e.PlayerID, FirstName: first, LastName: last}
	}
	if entry.ID == 0 {
		entry.ID = entry.Player.ID
	}

	switch {
	case e.Score != nil:
		entry.Score = e.Score.Int()
	case e.Value != nil:
		entry.Score = e.Value.Int()
	}
	return entry
}

func ToDomainGameDetail(resp dto.GameDetailResponse) models.GameDetailResponse {
	out := models.GameDetailResponse{
		Labels: models.StatLabels{Long: resp.LongNameStats, Short: resp.ShortNameStats},
	}
	if resp.Game == nil {
		return out
	}
	g := resp.Game

	detail := models.GameDetail{
		ID:          g.ID,
		Played:      g.Played,
		Phase:       g.Phase.String(),
		Round:       g.Round.String(),
		GameTime:    g.GameTime.TimePtr(),
		Stage:       g.Stage,
		ActiveStats: g.ActiveStats,
		Sets: models.GameSets{
			TeamAID:     g.GameSets.TeamAID,
			TeamA:       g.GameSets.TeamA,
			TeamALogo:   stringValue(g.GameSets.TeamALogo),
			TeamAScore:  g.GameSets.TeamAScore,
			TeamAScores: g.GameSets.TeamAScores,
			TeamBID:     g.GameSets.TeamBID,
			TeamB:       g.GameSets.TeamB,
			TeamBLogo:   stringValue(g.GameSets.TeamBLogo),
			TeamBScore:  g.GameSets.TeamBScore,
			TeamBScores: g.GameSets.TeamBScores,
		},
	}
	if g.Venue != nil {
		detail.Venue = &models.Venue{Name: g.Venue.Name, CourtNumber: g.Venue.CourtNumber.String()}
	}

	for _, ts := range g.TeamStats {
		detail.TeamStats = append(detail.TeamStats, models.GameDetailTeamStat{
			ID:            ts.ID,
			TeamName:      ts.TeamName,
			Score:         ts.Score,
			Result:        ts.Result,
			TeamLogo:      stringValue(ts.TeamLogo),
			LastFiveGames: toFlags(ts.LastFiveGames),
			PlayerStats:   toDomainPlayerGameStats(ts.PlayerStats),
		})
	}

	out.Game = detail
	return out
}

func toDomainPlayerGameStats(rows []dto.PlayerGameStat) []models.PlayerGameStat {
	out := make([]models.PlayerGameStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.PlayerGameStat{
			ID:              r.ID,
			PlayerName:      r.PlayerName,
			PlayerShortName: r.PlayerShortName,
			FirstName:       r.PlayerFirstName,
			LastName:        r.PlayerLastName,
			PlayerID:        r.PlayerID,
			Number:          r.PlayerNumber,
			Gender:          r.PlayerGender.String(),
			Image:           stringValue(r.PlayerImage),
			DynamicStats:    models.DynamicStats(r.DynamicStats),
		})
	}
	return out
}

func ToDomainPlayerSeason(resp dto.PlayerSeasonDetailResponse) models.PlayerSeasonDetailResponse {
	out := models.PlayerSeasonDetailResponse{
		Labels: models.StatLabels{Long: resp.LongNameStats, Short: resp.ShortNameStats},
	}
	if resp.PlayerSeason == nil {
		return out
	}
	ps := resp.PlayerSeason

	out.Season = models.PlayerSeasonInfo{
		Weight:        ps.Weight.String(),
		Height:        ps.Height.String(),
		Number:        ps.Number,
		Team:          ps.Team,
		Player:        ToDomainPlayer(ps.Player),
		ActiveStats:   ps.ActiveStats,
		Stats:         toDomainSeasonGameStats(ps.Stats),
		PlayoffsStats: toDomainSeasonGameStats(ps.PlayoffsStats),
	}
	return out
}

func toDomainSeasonGameStats(rows []dto.PlayerSeasonGameStat) []models.PlayerSeasonGameStat {
	out := make([]models.PlayerSeasonGameStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.PlayerSeasonGameStat{
			ID:           r.ID,
			Opponent:     r.Opponent,
			OpponentLogo: stringValue(r.OpponentLogo),
			DynamicStats: models.DynamicStats(r.DynamicStats),
		})
	}
	return out
}

func ToDomainTeamSeason(resp dto.TeamSeasonResponse) models.TeamSeasonDetail {
	if resp.TeamSeason == nil {
		return models.TeamSeasonDetail{}
	}
	ts := resp.TeamSeason

	out := models.TeamSeasonDetail{
		Games:       ToDomainGames(ts.Games),
		StatLeaders: toDomainStatLeaders(ts.StatLeaders, models.StatLabels{Long: resp.LongNameStats, Short: resp.ShortNameStats}),
	}
	for _, p := range ts.PlayerSeasons {
		out.Roster = append(out.Roster, models.PlayerSeason{
			ID:     p.ID,
			Number: p.Number,
			Player: ToDomainPlayer(p.Player),
		})
	}
	if ts.UpcomingGame != nil {
		g := ToDomainGame(*ts.UpcomingGame)
		out.UpcomingGame = &g
	}
	return out
}

// toDomainStatLeaders resolves missing category labels from the response's
// label maps and keeps the order produced by the decoder.
func toDomainStatLeaders(leaders dto.StatLeaders, labels models.StatLabels) []models.StatLeaderCategory {
	out := make([]models.StatLeaderCategory, 0, len(leaders.Categories))
	for _, c := range leaders.Categories {
		key := firstNonEmpty(c.Key, c.Name)
		entries := c.Players
		if len(entries) == 0 {
			entries = c.Leaders
		}

		category := models.StatLeaderCategory{
			Key:       key,
			LongName:  firstNonEmpty(c.LongName, labels.LongName(key)),
			ShortName: firstNonEmpty(c.ShortName, labels.ShortName(key)),
			Players:   make([]models.StatLeaderEntry, 0, len(entries)),
		}
		for _, e := range entries {
			category.Players = append(category.Players, toDomainLeaderEntry(e))
		}
		out = append(out, category)
	}

	if leaders.FromMap {
		models.SortStatLeaders(out)
	}
	return out
}

func toDomainLeaderEntry(e dto.StatLeaderEntry) models.StatLeaderEntry {
	entry := models.StatLeaderEntry{
		PlayerSeasonID: e.PlayerSeasonID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Image:          firstNonEmpty(stringValue(e.Picture), stringValue(e.Image)),
	}
	if entry.PlayerSeasonID == 0 {
		entry.PlayerSeasonID = e.ID
	}
	if e.Player != nil {
		p := ToDomainPlayer(e.Player)
		entry.FirstName = firstNonEmpty(entry.FirstName, p.FirstName)
		entry.LastName = firstNonEmpty(entry.LastName, p.LastName)
		entry.Image = firstNonEmpty(entry.Image, p.Picture)
	}
	if e.Total != nil {
		entry.Total = e.Total.Int()
	}
	return entry
}

func toFlags(flags []*dto.Flag) []*bool {
	if flags == nil {
		return nil
	}
	out := make([]*bool, len(flags))
	for i, f := range flags {
		if f != nil {
			v := bool(*f)
			out[i] = &v
		}
	}
	return out
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	first, last, _ := strings.Cut(full, " ")
	return first, strings.TrimSpace(last)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
