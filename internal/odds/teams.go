package odds

import "strings"

type Team struct {
	Abbr     string   // e.g. "SEA"
	City     string   // e.g. "Seattle"
	Nickname string   // e.g. "Seahawks"
	Alt      []string // other abbreviations seen on odds and stats sites
}

// AllTeams returns the 32 NFL teams.
func AllTeams() []Team {
	return []Team{
		{Abbr: "ARI", City: "Arizona", Nickname: "Cardinals", Alt: []string{"ARZ", "CRD"}},
		{Abbr: "ATL", City: "Atlanta", Nickname: "Falcons"},
		{Abbr: "BAL", City: "Baltimore", Nickname: "Ravens", Alt: []string{"RAV"}},
		{Abbr: "BUF", City: "Buffalo", Nickname: "Bills"},
		{Abbr: "CAR", City: "Carolina", Nickname: "Panthers"},
		{Abbr: "CHI", City: "Chicago", Nickname: "Bears"},
		{Abbr: "CIN", City: "Cincinnati", Nickname: "Bengals"},
		{Abbr: "CLE", City: "Cleveland", Nickname: "Browns"},
		{Abbr: "DAL", City: "Dallas", Nickname: "Cowboys"},
		{Abbr: "DEN", City: "Denver", Nickname: "Broncos"},
		{Abbr: "DET", City: "Detroit", Nickname: "Lions"},
		{Abbr: "GB", City: "Green Bay", Nickname: "Packers", Alt: []string{"GNB"}},
		{Abbr: "HOU", City: "Houston", Nickname: "Texans", Alt: []string{"HTX"}},
		{Abbr: "IND", City: "Indianapolis", Nickname: "Colts", Alt: []string{"CLT"}},
		{Abbr: "JAX", City: "Jacksonville", Nickname: "Jaguars", Alt: []string{"JAC"}},
		{Abbr: "KC", City: "Kansas City", Nickname: "Chiefs", Alt: []string{"KAN"}},
		{Abbr: "LV", City: "Las Vegas", Nickname: "Raiders", Alt: []string{"LVR", "RAI"}},
		{Abbr: "LAC", City: "Los Angeles", Nickname: "Chargers", Alt: []string{"SDG"}},
		{Abbr: "LAR", City: "Los Angeles", Nickname: "Rams", Alt: []string{"LA", "RAM"}},
		{Abbr: "MIA", City: "Miami", Nickname: "Dolphins"},
		{Abbr: "MIN", City: "Minnesota", Nickname: "Vikings"},
		{Abbr: "NE", City: "New England", Nickname: "Patriots", Alt: []string{"NWE"}},
		{Abbr: "NO", City: "New Orleans", Nickname: "Saints", Alt: []string{"NOR"}},
		{Abbr: "NYG", City: "New York", Nickname: "Giants"},
		{Abbr: "NYJ", City: "New York", Nickname: "Jets"},
		{Abbr: "PHI", City: "Philadelphia", Nickname: "Eagles"},
		{Abbr: "PIT", City: "Pittsburgh", Nickname: "Steelers"},
		{Abbr: "SF", City: "San Francisco", Nickname: "49ers", Alt: []string{"SFO"}},
		{Abbr: "SEA", City: "Seattle", Nickname: "Seahawks"},
		{Abbr: "TB", City: "Tampa Bay", Nickname: "Buccaneers", Alt: []string{"TAM"}},
		{Abbr: "TEN", City: "Tennessee", Nickname: "Titans", Alt: []string{"OTI"}},
		{Abbr: "WAS", City: "Washington", Nickname: "Commanders", Alt: []string{"WSH"}},
	}
}

// teamIndex maps every lower-cased alias to its team abbreviation. Aliases
// shared by two teams (Los Angeles, New York) are left out.
var teamIndex = buildTeamIndex()

func buildTeamIndex() map[string]string {
	idx := map[string]string{}
	ambiguous := map[string]struct{}{}
	add := func(alias, abbr string) {
		k := normKey(alias)
		if k == "" {
			return
		}
		if prev, ok := idx[k]; ok && prev != abbr {
			ambiguous[k] = struct{}{}
			return
		}
		idx[k] = abbr
	}
	for _, t := range AllTeams() {
		add(t.Abbr, t.Abbr)
		add(t.City, t.Abbr)
		add(t.Nickname, t.Abbr)
		add(t.City+" "+t.Nickname, t.Abbr)
		for _, a := range t.Alt {
			add(a, t.Abbr)
		}
	}
	for k := range ambiguous {
		delete(idx, k)
	}
	return idx
}

func normKey(s string) string {
	return strings.ToLower(cleanText(s))
}

// CanonicalTeam resolves a team name, nickname or abbreviation to the team
// abbreviation. Unknown names come back lower-cased with whitespace collapsed.
func CanonicalTeam(name string) string {
	k := normKey(name)
	if abbr, ok := teamIndex[k]; ok {
		return abbr
	}
	return k
}

// MatchupKey is the join key of a game: canonical away and home team. It is
// empty when both names are missing.
func MatchupKey(p Pair) string {
	a, h := CanonicalTeam(p.Away), CanonicalTeam(p.Home)
	if a == "" && h == "" {
		return ""
	}
	return a + "@" + h
}
