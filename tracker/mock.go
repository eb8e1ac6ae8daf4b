package tracker

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"legiswatch/congress"
	"legiswatch/types"
)

// billSeed is one hardcoded bill before URL/ID assembly.
type billSeed struct {
	Type           string
	Number         string
	Title          string
	Summary        string
	Sponsor        string
	IntroducedDate string
}

// mockTopics groups fallback bills by the topics users search most.
var mockTopics = map[string][]billSeed{
	"healthcare": {
		{
			Type: "HR", Number: "3421",
			Title:          "Healthcare Accessibility and Affordability Act of 2024",
			Summary:        "A bill to improve access to healthcare services and reduce prescription drug costs for Americans. This comprehensive legislation addresses key issues in healthcare delivery and aims to expand coverage while maintaining quality of care.",
			Sponsor:        "Rep. Sarah Johnson (D-CA)",
			IntroducedDate: "2024-12-15",
		},
		{
			Type: "S", Number: "1247",
			Title:          "Medicare Enhancement and Protection Act",
			Summary:        "To strengthen Medicare benefits and protect seniors from rising healthcare costs. The bill includes provisions for dental and vision coverage under Medicare Part B.",
			Sponsor:        "Sen. Michael Thompson (R-TX)",
			IntroducedDate: "2024-12-10",
		},
	},
	"climate": {
		{
			Type: "HR", Number: "2156",
			Title:          "Clean Energy Infrastructure Investment Act",
			Summary:        "Legislation to accelerate the deployment of renewable energy infrastructure and create green jobs across America. Includes tax incentives for solar and wind energy projects.",
			Sponsor:        "Rep. Elena Rodriguez (D-NV)",
			IntroducedDate: "2024-12-18",
		},
		{
			Type: "S", Number: "892",
			Title:          "Climate Resilience and Adaptation Act of 2024",
			Summary:        "A comprehensive approach to climate adaptation and resilience building in vulnerable communities. Provides federal funding for climate-resilient infrastructure.",
			Sponsor:        "Sen. James Wilson (I-VT)",
			IntroducedDate: "2024-12-12",
		},
	},
	"education": {
		{
			Type: "HR", Number: "4567",
			Title:          "Student Debt Relief and College Affordability Act",
			Summary:        "To provide student loan forgiveness and make college more affordable for middle-class families. Includes provisions for community college funding and trade school support.",
			Sponsor:        "Rep. David Chen (D-WA)",
			IntroducedDate: "2024-12-20",
		},
	},
	"infrastructure": {
		{
			Type: "HR", Number: "1789",
			Title:          "National Infrastructure Modernization Act",
			Summary:        "A comprehensive infrastructure bill addressing roads, bridges, broadband, and water systems. Aims to create jobs while modernizing America's infrastructure.",
			Sponsor:        "Rep. Maria Gonzalez (R-FL)",
			IntroducedDate: "2024-12-14",
		},
	},
	"technology": {
		{
			Type: "HR", Number: "2890",
			Title:          "Digital Privacy and Security Act of 2024",
			Summary:        "Comprehensive legislation to protect consumer data privacy and enhance cybersecurity standards for businesses. Includes requirements for data breach notifications and user consent.",
			Sponsor:        "Rep. Jennifer Kim (D-CA)",
			IntroducedDate: "2024-12-13",
		},
	},
}

// MockSource serves the fixed fallback dataset. It never fails, which
// is what makes it a safe substitute when the live API is down.
type MockSource struct {
	congress int
}

// NewMockSource builds the fallback source; the congress number is only
// used for URL generation.
func NewMockSource(congressNum int) *MockSource {
	return &MockSource{congress: congressNum}
}

// Name identifies the source in logs and drives the mock_data marker.
func (m *MockSource) Name() string { return "mock" }

// SearchByKeyword returns topic-matched bills, or keyword-templated
// defaults when no topic matches.
func (m *MockSource) SearchByKeyword(_ context.Context, keyword string, limit int) ([]*types.Bill, error) {
	keywordLower := strings.ToLower(strings.TrimSpace(keyword))

	var seeds []billSeed
	for topic, topicSeeds := range mockTopics {
		if strings.Contains(keywordLower, topic) || strings.Contains(topic, keywordLower) {
			seeds = append(seeds, topicSeeds...)
		}
	}

	if len(seeds) == 0 {
		seeds = defaultSeeds(keyword)
	}
	if len(seeds) > limit {
		seeds = seeds[:limit]
	}

	return m.build(seeds), nil
}

// SearchByState returns state-templated bills with numbers derived
// deterministically from the state so repeated searches agree.
func (m *MockSource) SearchByState(_ context.Context, state string, limit int) ([]*types.Bill, error) {
	abbr, ok := congress.NormalizeState(state)
	if !ok {
		abbr = strings.ToUpper(strings.TrimSpace(state))
	}

	seeds := []billSeed{
		{
			Type:           "HR",
			Number:         fmt.Sprintf("%d", stateHash(abbr)%9000+1000),
			Title:          fmt.Sprintf("%s Economic Development and Infrastructure Act", state),
			Summary:        fmt.Sprintf("A bill to promote economic development and improve infrastructure in the state of %s. Includes funding for transportation, broadband expansion, and job training programs specific to %s's needs.", state, state),
			Sponsor:        fmt.Sprintf("Rep. [Representative Name] (D-%s)", abbr),
			IntroducedDate: "2024-12-19",
		},
		{
			Type:           "S",
			Number:         fmt.Sprintf("%d", stateHash(abbr+"senate")%2000+100),
			Title:          fmt.Sprintf("%s Small Business Support Act of 2024", state),
			Summary:        fmt.Sprintf("Legislation to support small businesses and entrepreneurs in %s. Provides tax incentives, grants, and loan guarantees for small business development in rural and urban areas of %s.", state, state),
			Sponsor:        fmt.Sprintf("Sen. [Senator Name] (R-%s)", abbr),
			IntroducedDate: "2024-12-17",
		},
	}
	if len(seeds) > limit {
		seeds = seeds[:limit]
	}

	return m.build(seeds), nil
}

func defaultSeeds(keyword string) []billSeed {
	titled := titleCase(keyword)
	return []billSeed{
		{
			Type: "HR", Number: "5001",
			Title:          fmt.Sprintf("American Innovation and Competitiveness Act Related to %s", titled),
			Summary:        fmt.Sprintf("Legislation addressing %s policy and its impact on American competitiveness. This bill aims to strengthen our nation's position in %s-related sectors through targeted investments and regulatory reforms.", keyword, keyword),
			Sponsor:        "Rep. Alex Martinez (D-NY)",
			IntroducedDate: "2024-12-16",
		},
		{
			Type: "S", Number: "2301",
			Title:          fmt.Sprintf("Bipartisan %s Reform Act of 2024", titled),
			Summary:        fmt.Sprintf("A bipartisan approach to %s reform that brings together stakeholders from across the political spectrum. The bill includes provisions for transparency, accountability, and effectiveness in %s policy.", keyword, keyword),
			Sponsor:        "Sen. Robert Davis (R-GA)",
			IntroducedDate: "2024-12-11",
		},
	}
}

func (m *MockSource) build(seeds []billSeed) []*types.Bill {
	bills := make([]*types.Bill, 0, len(seeds))
	for _, s := range seeds {
		bills = append(bills, &types.Bill{
			ID:             s.Type + s.Number,
			Title:          s.Title,
			Summary:        s.Summary,
			IntroducedDate: s.IntroducedDate,
			Sponsor:        s.Sponsor,
			CongressURL:    congress.BillURL(m.congress, s.Type, s.Number),
			BillType:       s.Type,
			Number:         s.Number,
			UpdateDate:     s.IntroducedDate,
		})
	}
	return bills
}

func stateHash(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32())
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
