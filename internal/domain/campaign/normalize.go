package campaign

import (
	"fmt"
	"time"
)

const (
	// PersonaCount 는 페르소나 생성 결과의 고정 개수다.
	PersonaCount = 5
	// OffersPerPersona 는 페르소나당 오퍼의 고정 개수다.
	OffersPerPersona = 12
)

const (
	defaultConfidence = 85
	defaultReach      = 50000
)

// NormalizeCampaigns 는 캠페인 후보 목록을 도메인 캠페인으로 정규화한다.
// title/description 이 없는 후보는 버리고, 선택 필드는 기본값으로 채운다.
func NormalizeCampaigns(candidates []CandidateCampaign, now time.Time) []Campaign {
	campaigns := make([]Campaign, 0, len(candidates))
	for i, candidate := range candidates {
		if candidate.Title == "" || candidate.Description == "" {
			continue
		}

		status := Status(candidate.Status)
		if !status.Valid() {
			status = StatusReady
		}

		confidence := candidate.Confidence
		if confidence <= 0 {
			confidence = defaultConfidence
		}
		confidence = clampRate(confidence)

		reach := int64(candidate.Reach)
		if reach <= 0 {
			reach = defaultReach
		}

		id := candidate.ID
		if id == "" {
			id = fmt.Sprintf("campaign_%d", i+1)
		}

		campaigns = append(campaigns, Campaign{
			ID:             id,
			Title:          candidate.Title,
			Description:    candidate.Description,
			Season:         candidate.Season,
			Festival:       candidate.Festival,
			Trend:          candidate.Trend,
			TargetAudience: candidate.TargetAudience,
			Channels:       cloneStrings(candidate.Channels),
			ContentIdeas:   cloneStrings(candidate.ContentIdeas),
			Reach:          reach,
			Confidence:     confidence,
			Status:         status,
			Source:         candidate.Source,
			Content:        normalizeContent(candidate.Content),
			Metrics:        normalizeMetrics(candidate.Metrics),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return campaigns
}

// NormalizePersonas 는 페르소나 후보를 폴백 목록에 맞춰 정규화한다.
// 결과는 항상 정확히 PersonaCount 개, 각 페르소나는 OffersPerPersona 개의
// 오퍼를 가진다. 후보 i 의 빈 자리는 같은 인덱스의 폴백 페르소나에서 채운다
// (인덱스가 폴백 길이를 넘으면 0 으로 감는다).
func NormalizePersonas(candidates []CandidatePersona, fallback []Persona) []Persona {
	if len(fallback) == 0 {
		// 폴백 없이는 모양 보장을 세울 수 없다. 기본 페르소나로 대체한다.
		fallback = DefaultPersonas(Campaign{})
	}
	personas := make([]Persona, 0, PersonaCount)
	for i := 0; i < PersonaCount; i++ {
		base := fallback[i%len(fallback)].Clone()

		if i >= len(candidates) {
			personas = append(personas, base)
			continue
		}
		personas = append(personas, mergePersona(candidates[i], base, i))
	}
	return personas
}

// mergePersona 는 필드 단위로 후보 값을 우선하고 빈 필드만 폴백으로 채운다.
func mergePersona(candidate CandidatePersona, base Persona, index int) Persona {
	merged := base

	if candidate.ID != "" {
		merged.ID = candidate.ID
	}
	if candidate.Name != "" {
		merged.Name = candidate.Name
	}
	if candidate.Description != "" {
		merged.Description = candidate.Description
	}
	if candidate.Demographics.Age != "" {
		merged.Demographics.Age = candidate.Demographics.Age
	}
	if candidate.Demographics.Income != "" {
		merged.Demographics.Income = candidate.Demographics.Income
	}
	if candidate.Demographics.Location != "" {
		merged.Demographics.Location = candidate.Demographics.Location
	}
	if len(candidate.Demographics.Interests) > 0 {
		merged.Demographics.Interests = cloneStrings(candidate.Demographics.Interests)
	}
	if len(candidate.PainPoints) > 0 {
		merged.PainPoints = cloneStrings(candidate.PainPoints)
	}
	if len(candidate.Motivations) > 0 {
		merged.Motivations = cloneStrings(candidate.Motivations)
	}
	if len(candidate.PreferredChannels) > 0 {
		merged.PreferredChannels = cloneStrings(candidate.PreferredChannels)
	}
	if candidate.MessagingTone != "" {
		merged.MessagingTone = candidate.MessagingTone
	}

	if merged.ID == "" {
		merged.ID = fmt.Sprintf("persona_%d", index+1)
	}

	merged.Offers = mergeOffers(candidate.Offers, base.Offers)
	return merged
}

// mergeOffers 는 오퍼 개수를 정확히 OffersPerPersona 개로 맞춘다.
//   - 후보가 12개 이상이면 앞 12개를 그대로 신뢰한다.
//   - 1..11개면 후보를 모두 유지하고 폴백 오퍼의 같은 위치 이후를 덧붙인다.
//   - 0개면 폴백 오퍼 전체로 대체한다.
func mergeOffers(candidates []CandidateOffer, fallback []Offer) []Offer {
	kept := make([]Offer, 0, OffersPerPersona)
	for _, candidate := range candidates {
		if candidate.Title == "" {
			continue
		}
		kept = append(kept, normalizeOffer(candidate, len(kept)))
		if len(kept) == OffersPerPersona {
			break
		}
	}

	if len(kept) == 0 {
		return cloneOffers(fallback)
	}
	for i := len(kept); i < OffersPerPersona && i < len(fallback); i++ {
		kept = append(kept, fallback[i])
	}
	return kept
}

// normalizeOffer 는 오퍼 불변식을 만족하도록 빈 필드를 보정한다.
func normalizeOffer(candidate CandidateOffer, position int) Offer {
	offer := Offer{
		ID:           candidate.ID,
		Title:        candidate.Title,
		Description:  candidate.Description,
		Discount:     candidate.Discount,
		DiscountType: candidate.DiscountType,
		Value:        candidate.Value,
		Terms:        cloneStrings(candidate.Terms),
		Urgency:      candidate.Urgency,
		Exclusivity:  candidate.Exclusivity,
		CallToAction: candidate.CallToAction,
	}
	if offer.ID == "" {
		offer.ID = fmt.Sprintf("offer_%d", position+1)
	}
	if !ValidDiscountType(offer.DiscountType) {
		offer.DiscountType = "percentage"
	}
	if offer.Value == "" {
		offer.Value = offer.Title
	}
	if offer.CallToAction == "" {
		offer.CallToAction = "Learn More"
	}
	return offer
}

func normalizeContent(candidate CandidateContent) Content {
	return Content{
		Headline:       candidate.Headline,
		Subheadline:    candidate.Subheadline,
		Description:    candidate.Description,
		CallToAction:   candidate.CallToAction,
		KeyMessages:    cloneStrings(candidate.KeyMessages),
		VisualElements: cloneStrings(candidate.VisualElements),
		Tone:           candidate.Tone,
		BrandVoice:     candidate.BrandVoice,
	}
}

func normalizeMetrics(candidate CandidateMetrics) Metrics {
	return Metrics{
		ExpectedCTR:            clampRate(candidate.ExpectedCTR),
		ExpectedConversionRate: clampRate(candidate.ExpectedConversionRate),
		EstimatedRevenue:       max(candidate.EstimatedRevenue, 0),
		ExpectedROI:            candidate.ExpectedROI,
		ReadinessScore:         clampRate(candidate.ReadinessScore),
		PredictedEngagement:    max(candidate.PredictedEngagement, 0),
	}
}

func clampRate(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
