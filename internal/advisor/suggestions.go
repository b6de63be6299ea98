package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// CorrectionSuggestions derives a best-effort prose list of quick fixes
// for the input as it stands. It re-derives facts the structured report
// may also carry; the two are intentionally independent, this list exists
// for quick-fix UI affordances only.
func CorrectionSuggestions(in *loan.Input) []string {
	var suggestions []string

	base := in.FinanceableBase()
	if in.DownPayment.GreaterThan(in.HousePrice) {
		suggestions = append(suggestions,
			fmt.Sprintf("reduce the down payment to at most the house price (%s)", in.HousePrice))
	}
	if base.IsPositive() {
		if in.SizingMode == loan.SizeByAmount && in.LoanAmount.GreaterThan(base) {
			suggestions = append(suggestions,
				fmt.Sprintf("cap the loan amount at the computed maximum of %s", base))
		}
		if in.SizingMode == loan.SizeByRatio &&
			in.LoanRatio.GreaterThan(decimal.NewFromFloat(constants.MaxLoanRatio)) {
			suggestions = append(suggestions,
				fmt.Sprintf("cap the loan ratio at %.0f%%", constants.MaxLoanRatio*100))
		}
	}
	if in.LoanTermYears > constants.MaxLoanTermYears {
		suggestions = append(suggestions,
			fmt.Sprintf("shorten the loan term to at most %d years", constants.MaxLoanTermYears))
	}
	if in.Grace != nil && in.Grace.Years >= in.LoanTermYears {
		suggestions = append(suggestions,
			fmt.Sprintf("shorten the grace period below the %d-year term", in.LoanTermYears))
	}
	if in.RateMode == loan.RateStaged {
		if total := in.StagedPlan.TotalYears(); total != in.LoanTermYears && len(in.StagedPlan.Stages) > 0 {
			suggestions = append(suggestions,
				fmt.Sprintf("adjust the staged plan so its stages total %d years instead of %d",
					in.LoanTermYears, total))
		}
	}

	return suggestions
}
