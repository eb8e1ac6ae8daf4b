package congress

import "strings"

// stateAbbreviations maps lowercase state names to their two-letter codes.
var stateAbbreviations = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

var validAbbreviations = func() map[string]bool {
	m := make(map[string]bool, len(stateAbbreviations))
	for _, abbr := range stateAbbreviations {
		m[abbr] = true
	}
	return m
}()

// NormalizeState resolves a state name or two-letter code to its
// uppercase abbreviation. The second return value is false when the
// input matches no U.S. state.
func NormalizeState(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)

	if len(trimmed) == 2 {
		abbr := strings.ToUpper(trimmed)
		if validAbbreviations[abbr] {
			return abbr, true
		}
		return "", false
	}

	if abbr, ok := stateAbbreviations[strings.ToLower(trimmed)]; ok {
		return abbr, true
	}
	return "", false
}
