package campaign

import (
	"errors"
	"testing"
	"time"
)

func TestAdvanceStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{name: "draft to ready", from: StatusDraft, to: StatusReady},
		{name: "ready to launched", from: StatusReady, to: StatusLaunched},
		{name: "launched to completed", from: StatusLaunched, to: StatusCompleted},
		{name: "same status", from: StatusReady, to: StatusReady},
		{name: "skip forward", from: StatusDraft, to: StatusLaunched},
		{name: "launched back to ready", from: StatusLaunched, to: StatusReady, wantErr: true},
		{name: "completed back to draft", from: StatusCompleted, to: StatusDraft, wantErr: true},
		{name: "unknown status", from: StatusDraft, to: Status("archived"), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Campaign{Status: tc.from}
			err := c.AdvanceStatus(tc.to)
			if tc.wantErr {
				if !errors.Is(err, ErrStatusTransition) {
					t.Fatalf("expected ErrStatusTransition, got %v", err)
				}
				if c.Status != tc.from {
					t.Fatalf("status mutated on failed transition: %s", c.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, c.Status)
			}
		})
	}
}

func TestLaunch(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	c := Campaign{ID: "c1", Status: StatusReady}
	if err := c.Launch(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != StatusLaunched {
		t.Fatalf("expected launched, got %s", c.Status)
	}
	if c.LaunchedAt == nil || !c.LaunchedAt.Equal(now) {
		t.Fatalf("launchedAt not stamped: %v", c.LaunchedAt)
	}

	// 이미 런칭된 캠페인은 다시 런칭할 수 없다.
	if err := c.Launch(now.Add(time.Hour)); !errors.Is(err, ErrStatusTransition) {
		t.Fatalf("expected ErrStatusTransition, got %v", err)
	}
	if !c.LaunchedAt.Equal(now) {
		t.Fatalf("launchedAt overwritten on failed relaunch")
	}
}

func TestSeasonLabel(t *testing.T) {
	tests := []struct {
		name string
		c    Campaign
		want string
	}{
		{name: "season field", c: Campaign{Season: "Diwali"}, want: "Diwali"},
		{
			name: "festival list",
			c:    Campaign{PrimaryFestivalsOrSeason: []string{"Holi", "Spring"}},
			want: "Holi",
		},
		{name: "empty", c: Campaign{}, want: "General season"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.SeasonLabel(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestValidDiscountType(t *testing.T) {
	for _, valid := range []string{
		"percentage", "fixed", "bogo", "free_shipping", "points", "cashback",
		"service", "event", "access", "membership", "upgrade", "package",
		"challenge", "warranty", "family", "education",
	} {
		if !ValidDiscountType(valid) {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "coupon", "PERCENTAGE"} {
		if ValidDiscountType(invalid) {
			t.Fatalf("expected %q to be invalid", invalid)
		}
	}
}

func TestPersonaClone(t *testing.T) {
	original := DefaultPersonas(Campaign{Season: "Winter"})[0]
	clone := original.Clone()

	clone.Offers[0].Title = "mutated"
	clone.Offers[0].Terms[0] = "mutated"
	clone.PainPoints[0] = "mutated"
	clone.Demographics.Interests[0] = "mutated"

	if original.Offers[0].Title == "mutated" {
		t.Fatalf("offers aliased between clone and original")
	}
	if original.Offers[0].Terms[0] == "mutated" {
		t.Fatalf("offer terms aliased between clone and original")
	}
	if original.PainPoints[0] == "mutated" {
		t.Fatalf("pain points aliased between clone and original")
	}
	if original.Demographics.Interests[0] == "mutated" {
		t.Fatalf("interests aliased between clone and original")
	}
}
