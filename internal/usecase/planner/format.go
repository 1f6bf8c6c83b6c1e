package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
)

const runDateLayout = "02 Jan 2006"

// FormatSuggestionTable 은 캠페인 제안을 고정 컬럼의 마크다운 표로 만든다.
func FormatSuggestionTable(campaigns []campaign.Campaign) string {
	var b strings.Builder
	b.WriteString("| ID | Campaign Name | Suggested Run (dd MMM yyyy - dd MMM yyyy) | Primary Festivals/Season | Target Audience | Confidence | Source |\n")
	b.WriteString("|----|---------------|-------------------------------------------|-------------------------|-----------------|------------|--------|\n")

	for _, c := range campaigns {
		festivals := strings.Join(c.PrimaryFestivalsOrSeason, ", ")
		if festivals == "" {
			festivals = c.SeasonLabel()
		}
		source := c.Source
		if source == "" {
			source = "generated"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %.0f%% | %s |\n",
			c.ID,
			c.Title,
			formatRun(c.StartDate, c.EndDate),
			festivals,
			c.TargetAudience,
			c.Confidence,
			source,
		)
	}

	return b.String()
}

// FormatCampaignBrief 는 캠페인 개요와 페르소나별 오퍼 매트릭스를 만든다.
// 매트릭스는 페르소나 5열 x 오퍼 5행이며, 각 셀에 제목/가치/CTA 를 적는다.
func FormatCampaignBrief(c campaign.Campaign, personas []campaign.Persona) string {
	var b strings.Builder

	b.WriteString("**Campaign Brief:**\n")
	fmt.Fprintf(&b, "- **Title:** %s\n", c.Title)
	fmt.Fprintf(&b, "- **Audience:** %s\n", c.TargetAudience)
	channels := strings.Join(c.Channels, ", ")
	if channels == "" {
		channels = "Email, SMS, Social"
	}
	fmt.Fprintf(&b, "- **Channels:** %s\n", channels)
	fmt.Fprintf(&b, "- **Season:** %s\n", c.SeasonLabel())
	if c.StartDate != "" || c.EndDate != "" {
		fmt.Fprintf(&b, "- **Run:** %s\n", formatRun(c.StartDate, c.EndDate))
	}
	b.WriteString("\n**Offers Matrix:**\n")

	b.WriteString("| |")
	for _, p := range personas {
		fmt.Fprintf(&b, " %s |", p.Name)
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---|", len(personas)))
	b.WriteString("\n")

	for row := 0; row < 5; row++ {
		fmt.Fprintf(&b, "| **Offer %d** |", row+1)
		for _, p := range personas {
			if row >= len(p.Offers) {
				b.WriteString(" - |")
				continue
			}
			offer := p.Offers[row]
			fmt.Fprintf(&b, " %s<br/>%s<br/>%s |", offer.Title, offer.Value, offer.CallToAction)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// formatRun 은 ISO 날짜 구간을 "02 Jan 2006 - 02 Jan 2006" 형태로 바꾼다.
// 해석할 수 없는 값은 원문 그대로 둔다.
func formatRun(start string, end string) string {
	return fmt.Sprintf("%s - %s", formatRunDate(start), formatRunDate(end))
}

func formatRunDate(value string) string {
	if value == "" {
		return "TBD"
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return parsed.Format(runDateLayout)
}
