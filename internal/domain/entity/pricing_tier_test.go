package entity

import "testing"

func TestPricingTierCovers(t *testing.T) {
	tier := &PricingTier{Name: "Standard", Price: 250, MaxRoofArea: 100, MaxJobDuration: 4}

	tests := []struct {
		name        string
		roofArea    float64
		jobDuration float64
		want        bool
	}{
		{"well within limits", 50, 2, true},
		{"exactly at both limits", 100, 4, true},
		{"roof area just over", 100.01, 4, false},
		{"duration just over", 100, 4.01, false},
		{"both over", 150, 6, false},
		{"zero metrics", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tier.Covers(tt.roofArea, tt.jobDuration); got != tt.want {
				t.Errorf("Covers(%v, %v) = %v, want %v", tt.roofArea, tt.jobDuration, got, tt.want)
			}
		})
	}
}
