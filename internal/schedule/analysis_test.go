package schedule

import (
	"testing"

	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

func TestPeriodSummaries(t *testing.T) {
	calc := NewCalculator(zap.NewNop())
	result, err := calc.Calculate(fixedRateInput("1000000", "0.02", 30, loan.EqualInstallment))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if len(result.PeriodSummaries) != 10 {
		t.Fatalf("got %d summaries, expected 10 windows of 3 years", len(result.PeriodSummaries))
	}

	first := result.PeriodSummaries[0]
	if first.StartYear != 1 || first.EndYear != 3 {
		t.Errorf("first window spans years %d-%d, expected 1-3", first.StartYear, first.EndYear)
	}
	last := result.PeriodSummaries[9]
	if last.StartYear != 28 || last.EndYear != 30 {
		t.Errorf("last window spans years %d-%d, expected 28-30", last.StartYear, last.EndYear)
	}
	if !last.EndingBalance.IsZero() {
		t.Errorf("last window ending balance = %s, expected 0", last.EndingBalance)
	}

	// Window totals must partition the schedule totals.
	windowTotal := mathutil.Zero
	for _, summary := range result.PeriodSummaries {
		windowTotal = windowTotal.Add(summary.TotalPayment)
	}
	if !windowTotal.Equal(result.TotalPayment) {
		t.Errorf("window totals sum to %s, schedule total is %s", windowTotal, result.TotalPayment)
	}

	// Percentages of each window add up to the whole window.
	for _, summary := range result.PeriodSummaries {
		within(t, "window percentage sum",
			summary.PrincipalPercent.Add(summary.InterestPercent), "100", "0.01")
	}

	// Early windows are interest-heavier than late ones.
	if !first.InterestPercent.GreaterThan(last.InterestPercent) {
		t.Errorf("interest share should decline: first %s%%, last %s%%",
			first.InterestPercent, last.InterestPercent)
	}
}

func TestPeriodSummariesShortFinalWindow(t *testing.T) {
	calc := NewCalculator(zap.NewNop())
	// 10 years -> three full windows plus a single-year tail.
	result, err := calc.Calculate(fixedRateInput("1000000", "0.03", 10, loan.EqualInstallment))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if len(result.PeriodSummaries) != 4 {
		t.Fatalf("got %d summaries, expected 4", len(result.PeriodSummaries))
	}
	tail := result.PeriodSummaries[3]
	if tail.StartYear != 10 || tail.EndYear != 10 {
		t.Errorf("tail window spans years %d-%d, expected 10-10", tail.StartYear, tail.EndYear)
	}
}

func TestInterestPrincipalAnalysis(t *testing.T) {
	calc := NewCalculator(zap.NewNop())
	result, err := calc.Calculate(fixedRateInput("1000000", "0.02", 30, loan.EqualInstallment))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	analysis := result.Analysis
	if len(analysis.Years) != 30 {
		t.Fatalf("got %d yearly entries, expected 30", len(analysis.Years))
	}

	if !analysis.TotalPrincipal.Equal(d("1000000")) {
		t.Errorf("analysis principal = %s, expected exactly 1000000", analysis.TotalPrincipal)
	}
	if !analysis.TotalInterest.Equal(result.TotalInterest) {
		t.Errorf("analysis interest = %s, schedule total is %s",
			analysis.TotalInterest, result.TotalInterest)
	}
	within(t, "overall percentage sum",
		analysis.PrincipalPercent.Add(analysis.InterestPercent), "100", "0.01")

	for i, year := range analysis.Years {
		if year.Year != i+1 {
			t.Fatalf("yearly entry %d carries year %d", i, year.Year)
		}
	}

	// The year-end balances must agree with the schedule rows they summarize.
	if !analysis.Years[0].EndingBalance.Equal(result.Schedule[11].RemainingBalance) {
		t.Errorf("year 1 ending balance = %s, schedule says %s",
			analysis.Years[0].EndingBalance, result.Schedule[11].RemainingBalance)
	}
	if !analysis.Years[29].EndingBalance.IsZero() {
		t.Errorf("year 30 ending balance = %s, expected 0", analysis.Years[29].EndingBalance)
	}
}

func TestAnalysisIncludesGraceYears(t *testing.T) {
	calc := NewCalculator(zap.NewNop())
	input := fixedRateInput("1000000", "0.03", 20, loan.EqualInstallment)
	input.Grace = &loan.GracePeriod{Years: 2, IncludedInTerm: true}

	result, err := calc.Calculate(input)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if len(result.Analysis.Years) != 20 {
		t.Fatalf("got %d yearly entries, expected 20", len(result.Analysis.Years))
	}

	// Grace years repay no principal at all.
	year1 := result.Analysis.Years[0]
	if !year1.Principal.IsZero() {
		t.Errorf("grace year principal = %s, expected 0", year1.Principal)
	}
	if !year1.EndingBalance.Equal(d("1000000")) {
		t.Errorf("grace year ending balance = %s, expected 1000000", year1.EndingBalance)
	}
}
