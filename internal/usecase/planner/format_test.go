package planner

import (
	"strings"
	"testing"

	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
)

func TestFormatSuggestionTable(t *testing.T) {
	campaigns := []campaign.Campaign{
		{
			ID:                       "c1",
			Title:                    "Diwali Dhamaka",
			StartDate:                "2026-10-15",
			EndDate:                  "2026-11-05",
			PrimaryFestivalsOrSeason: []string{"Diwali", "Dhanteras"},
			TargetAudience:           "Urban families",
			Confidence:               90,
			Source:                   "generated",
		},
		{
			ID:             "c2",
			Title:          "Spring Refresh",
			Season:         "Spring",
			TargetAudience: "Young professionals",
			Confidence:     75,
		},
	}

	table := FormatSuggestionTable(campaigns)

	if !strings.Contains(table, "| ID | Campaign Name | Suggested Run (dd MMM yyyy - dd MMM yyyy) | Primary Festivals/Season | Target Audience | Confidence | Source |") {
		t.Fatalf("header row missing:\n%s", table)
	}
	if !strings.Contains(table, "| c1 | Diwali Dhamaka | 15 Oct 2026 - 05 Nov 2026 | Diwali, Dhanteras | Urban families | 90% | generated |") {
		t.Fatalf("first row malformed:\n%s", table)
	}
	// 축제 목록이 없으면 시즌으로, 출처가 없으면 generated 로 채운다.
	if !strings.Contains(table, "| c2 | Spring Refresh | TBD - TBD | Spring | Young professionals | 75% | generated |") {
		t.Fatalf("defaulted row malformed:\n%s", table)
	}
}

func TestFormatCampaignBrief(t *testing.T) {
	c := campaign.Campaign{
		Title:          "Spring Refresh",
		TargetAudience: "Young professionals",
		Season:         "Spring",
		Channels:       []string{"Email", "Push"},
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-31",
	}
	personas := campaign.DefaultPersonas(c)

	brief := FormatCampaignBrief(c, personas)

	for _, want := range []string{
		"**Campaign Brief:**",
		"- **Title:** Spring Refresh",
		"- **Audience:** Young professionals",
		"- **Channels:** Email, Push",
		"- **Season:** Spring",
		"- **Run:** 01 Mar 2026 - 31 Mar 2026",
		"**Offers Matrix:**",
	} {
		if !strings.Contains(brief, want) {
			t.Fatalf("brief missing %q:\n%s", want, brief)
		}
	}

	// 매트릭스 헤더에 다섯 페르소나가 모두 나와야 한다.
	for _, p := range personas {
		if !strings.Contains(brief, " "+p.Name+" |") {
			t.Fatalf("matrix header missing persona %q", p.Name)
		}
	}
	for row := 1; row <= 5; row++ {
		if !strings.Contains(brief, "| **Offer "+string(rune('0'+row))+"** |") {
			t.Fatalf("matrix missing row %d", row)
		}
	}

	first := personas[0].Offers[0]
	cell := first.Title + "<br/>" + first.Value + "<br/>" + first.CallToAction
	if !strings.Contains(brief, cell) {
		t.Fatalf("offer cell missing %q", cell)
	}
}

func TestFormatCampaignBriefShortOffers(t *testing.T) {
	personas := []campaign.Persona{
		{Name: "Solo", Offers: []campaign.Offer{{Title: "Only One", Value: "10%", CallToAction: "Go"}}},
	}

	brief := FormatCampaignBrief(campaign.Campaign{Title: "T"}, personas)
	if !strings.Contains(brief, "Only One<br/>10%<br/>Go") {
		t.Fatalf("present offer missing:\n%s", brief)
	}
	if strings.Count(brief, " - |") != 4 {
		t.Fatalf("expected 4 placeholder cells:\n%s", brief)
	}
}

func TestFormatRunDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-10-15", "15 Oct 2026"},
		{"", "TBD"},
		{"next week", "next week"},
	}
	for _, tc := range tests {
		if got := formatRunDate(tc.in); got != tc.want {
			t.Fatalf("formatRunDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
