package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

// EstimateMonthlyPayment returns a fast single-number payment estimate
// computed off the effective (duration-weighted) annual rate. For staged
// plans this disagrees with the chained per-stage schedule by design; it
// is an estimate for quick display only, never the schedule of record.
func EstimateMonthlyPayment(input *loan.Input) decimal.Decimal {
	months := input.RepaymentMonths()
	if input.RateMode == loan.RateStaged {
		months = input.StagedPlan.TotalYears() * 12
	}
	principal := input.EffectiveLoanAmount()
	rate := input.EffectiveMonthlyRate()

	if input.RepaymentMethod == loan.EqualPrincipal {
		// First-month payment, the highest of the declining series.
		if months <= 0 {
			return mathutil.Zero
		}
		return principal.Div(decimal.NewFromInt(int64(months))).Add(principal.Mul(rate))
	}
	return LevelPayment(principal, rate, months)
}
