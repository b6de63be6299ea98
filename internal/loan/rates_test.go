package loan

import (
	"testing"
)

func TestRateStageDerivations(t *testing.T) {
	stage := RateStage{AnnualRate: d("0.024"), Years: 5}

	if rate := stage.MonthlyRate(); !rate.Equal(d("0.002")) {
		t.Errorf("MonthlyRate() = %s, expected 0.002", rate)
	}
	if months := stage.Months(); months != 60 {
		t.Errorf("Months() = %d, expected 60", months)
	}
}

func TestWeightedAverageAnnualRate(t *testing.T) {
	tests := []struct {
		name     string
		plan     StagedRatePlan
		expected string
	}{
		{
			name: "Two stages weighted by duration",
			plan: StagedRatePlan{Stages: []RateStage{
				{AnnualRate: d("0.02"), Years: 10},
				{AnnualRate: d("0.05"), Years: 20},
			}},
			expected: "0.04",
		},
		{
			name: "Single stage is its own average",
			plan: StagedRatePlan{Stages: []RateStage{
				{AnnualRate: d("0.03"), Years: 30},
			}},
			expected: "0.03",
		},
		{
			name:     "Empty plan averages to zero",
			plan:     StagedRatePlan{},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if avg := tt.plan.WeightedAverageAnnualRate(); !avg.Equal(d(tt.expected)) {
				t.Errorf("WeightedAverageAnnualRate() = %s, expected %s", avg, tt.expected)
			}
		})
	}
}

func TestTotalYearsToleratesTermMismatch(t *testing.T) {
	// A plan shorter than the nominal term still derives; flagging the
	// mismatch is the advisor's job, not the model's.
	plan := StagedRatePlan{Stages: []RateStage{
		{AnnualRate: d("0.02"), Years: 10},
		{AnnualRate: d("0.03"), Years: 19},
	}}
	if total := plan.TotalYears(); total != 29 {
		t.Errorf("TotalYears() = %d, expected 29", total)
	}
	if avg := plan.WeightedAverageAnnualRate(); avg.IsZero() {
		t.Errorf("WeightedAverageAnnualRate() should produce a best-effort estimate")
	}
}
