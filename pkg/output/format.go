// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/mortgage-calc/internal/advisor"
	"github.com/iwvelando/mortgage-calc/internal/schedule"
)

// PrettyFormat outputs a human-readable rather than machine-readable view
// of the calculation: headline figures, the grace comparison when present,
// 3-year summaries, and the yearly breakdown.
func PrettyFormat(result *schedule.CalculationResult) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Loan summary ---\n")
	_, _ = p.Printf("Loan amount           | %s\n", result.EffectiveLoanAmount.StringFixed(2))
	_, _ = p.Printf("Initial cash required | %s\n", result.InitialCash.StringFixed(2))
	_, _ = p.Printf("Total investment cost | %s\n", result.TotalInvestmentCost.StringFixed(2))
	_, _ = p.Printf("Monthly payment       | %s\n", result.MonthlyPayment.StringFixed(2))
	_, _ = p.Printf("Total interest        | %s\n", result.TotalInterest.StringFixed(2))
	_, _ = p.Printf("Total payment         | %s\n", result.TotalPayment.StringFixed(2))

	if grace := result.GraceInfo; grace != nil {
		fmt.Printf("\n--- Grace period ---\n")
		_, _ = p.Printf("Interest-only payment | %s\n", grace.GraceMonthlyPayment.StringFixed(2))
		_, _ = p.Printf("Post-grace payment    | %s\n", grace.PostGraceMonthlyPayment.StringFixed(2))
		_, _ = p.Printf("Payment increase      | %s (%s%%)\n",
			grace.PaymentIncrease.StringFixed(2), grace.PaymentIncreasePercent.StringFixed(1))
		_, _ = p.Printf("Extra interest        | %s\n", grace.TotalInterestIncrease.StringFixed(2))
		_, _ = p.Printf("Total span            | %d months\n", grace.TotalMonths)
	}

	fmt.Printf("\n--- 3-year summaries ---\n")
	fmt.Printf("Years   | Avg payment   | Principal %%  | Interest %%  | Ending balance\n")
	fmt.Printf("_____   | ___________   | ___________  | __________  | ______________\n")
	for _, summary := range result.PeriodSummaries {
		_, _ = p.Printf("%2d - %2d | %13s | %11s%% | %10s%% | %s\n",
			summary.StartYear, summary.EndYear,
			summary.AverageLoanPayment.StringFixed(2),
			summary.PrincipalPercent.StringFixed(1),
			summary.InterestPercent.StringFixed(1),
			summary.EndingBalance.StringFixed(2))
	}

	fmt.Printf("\n--- Yearly breakdown ---\n")
	fmt.Printf("Year | Payment       | Principal     | Interest      | Ending balance\n")
	fmt.Printf("____ | _______       | _________     | ________      | ______________\n")
	for _, year := range result.Analysis.Years {
		_, _ = p.Printf("%4d | %13s | %13s | %13s | %s\n",
			year.Year,
			year.Payment.StringFixed(2),
			year.Principal.StringFixed(2),
			year.Interest.StringFixed(2),
			year.EndingBalance.StringFixed(2))
	}
}

// CsvFormat outputs the full schedule in comma-separated value format.
func CsvFormat(result *schedule.CalculationResult) {
	fmt.Printf(`"period","year","month","stage","payment","principal","interest","balance","grace"`)
	fmt.Printf("\n")
	for _, row := range result.Schedule {
		fmt.Printf(`"%d","%d","%d","%d","%s","%s","%s","%s","%t"`,
			row.PeriodIndex, row.YearIndex, row.MonthInYear, row.StageNumber,
			row.Payment.StringFixed(2),
			row.PrincipalPortion.StringFixed(2),
			row.InterestPortion.StringFixed(2),
			row.RemainingBalance.StringFixed(2),
			row.IsGracePeriod)
		fmt.Printf("\n")
	}
}

// PrintReport writes the validation findings ahead of any results.
func PrintReport(report advisor.Report, suggestions []string) {
	for _, err := range report.Errors {
		fmt.Printf("ERROR   [%s] %s\n", err.Field, err.Message)
	}
	for _, warning := range report.Warnings {
		fmt.Printf("WARNING [%s] %s", warning.Field, warning.Message)
		if warning.Suggestion != "" {
			fmt.Printf(" (%s)", warning.Suggestion)
		}
		fmt.Printf("\n")
	}
	for _, info := range report.Infos {
		fmt.Printf("INFO    [%s] %s", info.Field, info.Message)
		if info.Recommendation != "" {
			fmt.Printf(" (%s)", info.Recommendation)
		}
		fmt.Printf("\n")
	}
	for _, suggestion := range suggestions {
		fmt.Printf("FIX     %s\n", suggestion)
	}
}
