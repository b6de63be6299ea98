package loan

import (
	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

// RateStage is one segment of a staged interest-rate plan. AnnualRate is a
// decimal fraction (0.025 = 2.5%).
type RateStage struct {
	AnnualRate decimal.Decimal `json:"annualRate" yaml:"annualRate"`
	Years      int             `json:"years" yaml:"years"`
}

// MonthlyRate returns the stage's rate per month.
func (s RateStage) MonthlyRate() decimal.Decimal {
	return s.AnnualRate.Div(mathutil.Twelve)
}

// Months returns the stage's duration in months.
func (s RateStage) Months() int {
	return s.Years * constants.MonthsPerYear
}

// StagedRatePlan is an ordered sequence of rate stages applied
// chronologically. Stage numbering is derived from position (index+1) at
// read time; nothing stores a stage number that could go stale.
type StagedRatePlan struct {
	Stages []RateStage `json:"stages" yaml:"stages"`
}

// TotalYears sums the stage durations.
func (p StagedRatePlan) TotalYears() int {
	total := 0
	for _, stage := range p.Stages {
		total += stage.Years
	}
	return total
}

// WeightedAverageAnnualRate returns the duration-weighted average annual
// rate across all stages, or zero for an empty plan. Plans whose years do
// not sum to the loan term still produce a best-effort estimate here; the
// mismatch itself is the advisor's concern.
func (p StagedRatePlan) WeightedAverageAnnualRate() decimal.Decimal {
	totalYears := p.TotalYears()
	if totalYears == 0 {
		return mathutil.Zero
	}
	weighted := mathutil.Zero
	for _, stage := range p.Stages {
		weighted = weighted.Add(stage.AnnualRate.Mul(decimal.NewFromInt(int64(stage.Years))))
	}
	return weighted.Div(decimal.NewFromInt(int64(totalYears)))
}
