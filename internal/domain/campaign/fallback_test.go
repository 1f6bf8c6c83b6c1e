package campaign

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefaultPersonasShape(t *testing.T) {
	personas := DefaultPersonas(Campaign{Title: "Spring Sale", Season: "Spring"})

	if len(personas) != PersonaCount {
		t.Fatalf("expected %d personas, got %d", PersonaCount, len(personas))
	}

	seen := make(map[string]struct{})
	for _, p := range personas {
		if len(p.Offers) != OffersPerPersona {
			t.Fatalf("persona %s has %d offers", p.Name, len(p.Offers))
		}
		if p.ID == "" || p.Name == "" || p.MessagingTone == "" {
			t.Fatalf("persona %s missing required fields", p.ID)
		}
		for _, offer := range p.Offers {
			if offer.Title == "" || offer.Value == "" || offer.CallToAction == "" {
				t.Fatalf("offer %s/%s missing required fields", p.ID, offer.ID)
			}
			if !ValidDiscountType(offer.DiscountType) {
				t.Fatalf("offer %s/%s has invalid discountType %q", p.ID, offer.ID, offer.DiscountType)
			}
			seen[offer.DiscountType] = struct{}{}
		}
	}

	// 오퍼들은 다양한 할인 유형을 포함해야 한다.
	for _, dt := range []string{"percentage", "bogo", "points", "free_shipping", "service", "warranty", "education"} {
		if _, ok := seen[dt]; !ok {
			t.Fatalf("expected discount type %q among default offers", dt)
		}
	}
}

func TestDefaultPersonasDeterministic(t *testing.T) {
	c := Campaign{Title: "Holiday Gift Guide", Season: "Winter"}
	first := DefaultPersonas(c)
	second := DefaultPersonas(c)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("default personas not deterministic for identical input")
	}
}

func TestDefaultPersonasSeasonInterpolation(t *testing.T) {
	personas := DefaultPersonas(Campaign{Season: "Diwali"})
	for _, p := range personas {
		if !strings.Contains(p.Name, "Diwali") {
			t.Fatalf("expected season in persona name, got %q", p.Name)
		}
	}

	general := DefaultPersonas(Campaign{})
	if !strings.Contains(general[0].Name, "General season") {
		t.Fatalf("expected default season label, got %q", general[0].Name)
	}
}

func TestDefaultPersonasNoAliasing(t *testing.T) {
	c := Campaign{Season: "Summer"}
	first := DefaultPersonas(c)
	first[0].Offers[0].Title = "mutated"
	first[0].Offers[0].Terms[0] = "mutated"

	second := DefaultPersonas(c)
	if second[0].Offers[0].Title == "mutated" || second[0].Offers[0].Terms[0] == "mutated" {
		t.Fatalf("default personas share state across calls")
	}
}
