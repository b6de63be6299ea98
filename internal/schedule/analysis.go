package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

// buildPeriodSummaries groups the schedule into non-overlapping 3-year
// windows starting at year 1. The last window may be shorter.
func buildPeriodSummaries(rows []PaymentPeriod) []PeriodSummary {
	windowMonths := constants.SummaryWindowYears * constants.MonthsPerYear
	var summaries []PeriodSummary
	for start := 0; start < len(rows); start += windowMonths {
		end := start + windowMonths
		if end > len(rows) {
			end = len(rows)
		}
		window := rows[start:end]

		summary := PeriodSummary{
			StartYear: window[0].YearIndex,
			EndYear:   window[len(window)-1].YearIndex,
		}
		for _, row := range window {
			summary.TotalPayment = summary.TotalPayment.Add(row.Payment)
			summary.TotalPrincipal = summary.TotalPrincipal.Add(row.PrincipalPortion)
			summary.TotalInterest = summary.TotalInterest.Add(row.InterestPortion)
		}
		count := decimal.NewFromInt(int64(len(window)))
		summary.AverageLoanPayment = summary.TotalPayment.Div(count)
		summary.AveragePrincipal = summary.TotalPrincipal.Div(count)
		summary.AverageInterest = summary.TotalInterest.Div(count)
		summary.PrincipalPercent = mathutil.Percentage(summary.TotalPrincipal, summary.TotalPayment)
		summary.InterestPercent = mathutil.Percentage(summary.TotalInterest, summary.TotalPayment)
		summary.EndingBalance = window[len(window)-1].RemainingBalance

		summaries = append(summaries, summary)
	}
	return summaries
}

// buildAnalysis produces the whole-schedule principal/interest breakdown
// plus one entry per calendar year.
func buildAnalysis(rows []PaymentPeriod) InterestPrincipalAnalysis {
	var analysis InterestPrincipalAnalysis
	totalPayment := mathutil.Zero
	for _, row := range rows {
		totalPayment = totalPayment.Add(row.Payment)
		analysis.TotalPrincipal = analysis.TotalPrincipal.Add(row.PrincipalPortion)
		analysis.TotalInterest = analysis.TotalInterest.Add(row.InterestPortion)
	}
	analysis.PrincipalPercent = mathutil.Percentage(analysis.TotalPrincipal, totalPayment)
	analysis.InterestPercent = mathutil.Percentage(analysis.TotalInterest, totalPayment)

	for start := 0; start < len(rows); start += constants.MonthsPerYear {
		end := start + constants.MonthsPerYear
		if end > len(rows) {
			end = len(rows)
		}
		window := rows[start:end]

		year := YearlyAnalysis{Year: window[0].YearIndex}
		for _, row := range window {
			year.Payment = year.Payment.Add(row.Payment)
			year.Principal = year.Principal.Add(row.PrincipalPortion)
			year.Interest = year.Interest.Add(row.InterestPortion)
		}
		year.PrincipalPercent = mathutil.Percentage(year.Principal, year.Payment)
		year.InterestPercent = mathutil.Percentage(year.Interest, year.Payment)
		year.EndingBalance = window[len(window)-1].RemainingBalance

		analysis.Years = append(analysis.Years, year)
	}
	return analysis
}
