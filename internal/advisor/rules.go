package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/internal/schedule"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// Rule is one independent evaluator. Each rule sees only the input record
// and returns its own partial report.
type Rule func(in *loan.Input) Report

// Rules is the ordered evaluation pipeline: range checks, cross-field
// consistency, staged-plan structure, risk heuristics, then notes.
var Rules = []Rule{
	checkHousePrice,
	checkDownPayment,
	checkLoanTerm,
	checkFixedRate,
	checkLoanSizing,
	checkGracePeriod,
	checkFees,
	checkStagedPlan,
	warnHighLoanRatio,
	warnPaymentBurden,
	warnLongGrace,
	warnShortRepayment,
	warnHighRenovation,
	warnHighTotalInvestment,
	noteLowDownPayment,
	notePromotionalRate,
}

// Validate evaluates every rule against the input and concatenates the
// findings.
func Validate(in *loan.Input) Report {
	var report Report
	for _, rule := range Rules {
		report.merge(rule(in))
	}
	return report
}

func checkHousePrice(in *loan.Input) Report {
	var r Report
	if in.HousePrice.LessThan(decimal.NewFromInt(constants.MinHousePrice)) ||
		in.HousePrice.GreaterThan(decimal.NewFromInt(constants.MaxHousePrice)) {
		r.Errors = append(r.Errors, Error{
			Field: "housePrice",
			Message: fmt.Sprintf("house price must be between %d and %d, got %s",
				constants.MinHousePrice, constants.MaxHousePrice, in.HousePrice),
		})
	}
	return r
}

func checkDownPayment(in *loan.Input) Report {
	var r Report
	if in.DownPayment.IsNegative() {
		r.Errors = append(r.Errors, Error{
			Field:   "downPayment",
			Message: fmt.Sprintf("down payment must not be negative, got %s", in.DownPayment),
		})
	}
	if in.DownPayment.GreaterThan(in.HousePrice) {
		r.Errors = append(r.Errors, Error{
			Field: "downPayment",
			Message: fmt.Sprintf("down payment %s exceeds house price %s",
				in.DownPayment, in.HousePrice),
		})
	} else if !in.FinanceableBase().IsPositive() {
		r.Errors = append(r.Errors, Error{
			Field:   "downPayment",
			Message: "house price minus down payment leaves nothing to finance",
		})
	}
	return r
}

func checkLoanTerm(in *loan.Input) Report {
	var r Report
	if in.LoanTermYears < constants.MinLoanTermYears || in.LoanTermYears > constants.MaxLoanTermYears {
		r.Errors = append(r.Errors, Error{
			Field: "loanTermYears",
			Message: fmt.Sprintf("loan term must be between %d and %d years, got %d",
				constants.MinLoanTermYears, constants.MaxLoanTermYears, in.LoanTermYears),
		})
	}
	return r
}

func checkFixedRate(in *loan.Input) Report {
	var r Report
	if in.RateMode != loan.RateFixed {
		return r
	}
	if in.FixedAnnualRate.LessThan(decimal.NewFromFloat(constants.MinAnnualRate)) ||
		in.FixedAnnualRate.GreaterThan(decimal.NewFromFloat(constants.MaxAnnualRate)) {
		r.Errors = append(r.Errors, Error{
			Field: "fixedAnnualRate",
			Message: fmt.Sprintf("annual rate must be between %.3f and %.2f, got %s",
				constants.MinAnnualRate, constants.MaxAnnualRate, in.FixedAnnualRate),
		})
	}
	return r
}

func checkLoanSizing(in *loan.Input) Report {
	var r Report
	base := in.FinanceableBase()
	if !base.IsPositive() {
		// Already reported by the down payment rule; sizing against a
		// non-positive base is meaningless.
		return r
	}
	switch in.SizingMode {
	case loan.SizeByRatio:
		if in.LoanRatio.LessThan(decimal.NewFromFloat(constants.MinLoanRatio)) ||
			in.LoanRatio.GreaterThan(decimal.NewFromFloat(constants.MaxLoanRatio)) {
			r.Errors = append(r.Errors, Error{
				Field: "loanRatio",
				Message: fmt.Sprintf("loan ratio must be between %.2f and %.2f, got %s",
					constants.MinLoanRatio, constants.MaxLoanRatio, in.LoanRatio),
			})
		}
		if in.EffectiveLoanAmount().GreaterThan(base) {
			r.Errors = append(r.Errors, Error{
				Field: "loanRatio",
				Message: fmt.Sprintf("derived loan amount %s exceeds the financeable base %s",
					in.EffectiveLoanAmount(), base),
			})
		}
	case loan.SizeByAmount:
		if in.LoanAmount.GreaterThan(base) {
			r.Errors = append(r.Errors, Error{
				Field: "loanAmount",
				Message: fmt.Sprintf("loan amount %s exceeds the financeable base %s",
					in.LoanAmount, base),
			})
		}
	default:
		r.Errors = append(r.Errors, Error{
			Field:   "sizingMode",
			Message: fmt.Sprintf("unknown sizing mode %q", in.SizingMode),
		})
	}
	return r
}

func checkGracePeriod(in *loan.Input) Report {
	var r Report
	if in.Grace == nil {
		return r
	}
	if in.Grace.Years < constants.MinGraceYears || in.Grace.Years > constants.MaxGraceYears {
		r.Errors = append(r.Errors, Error{
			Field: "grace.years",
			Message: fmt.Sprintf("grace period must be between %d and %d years, got %d",
				constants.MinGraceYears, constants.MaxGraceYears, in.Grace.Years),
		})
	}
	// A grace period shorter than the integer term always leaves at least
	// one repayment year, included in the term or not.
	if in.Grace.Years >= in.LoanTermYears {
		r.Errors = append(r.Errors, Error{
			Field: "grace.years",
			Message: fmt.Sprintf("grace period of %d years must be shorter than the %d-year term",
				in.Grace.Years, in.LoanTermYears),
		})
	}
	return r
}

func checkFees(in *loan.Input) Report {
	var r Report
	if in.MiscFees.IsNegative() || in.MiscFees.GreaterThan(decimal.NewFromInt(constants.MaxMiscFees)) {
		r.Errors = append(r.Errors, Error{
			Field: "miscFees",
			Message: fmt.Sprintf("miscellaneous fees must be between 0 and %d, got %s",
				constants.MaxMiscFees, in.MiscFees),
		})
	}
	if in.RenovationFees.IsNegative() || in.RenovationFees.GreaterThan(decimal.NewFromInt(constants.MaxRenovationFees)) {
		r.Errors = append(r.Errors, Error{
			Field: "renovationFees",
			Message: fmt.Sprintf("renovation fees must be between 0 and %d, got %s",
				constants.MaxRenovationFees, in.RenovationFees),
		})
	}
	return r
}

func checkStagedPlan(in *loan.Input) Report {
	var r Report
	if in.RateMode != loan.RateStaged {
		return r
	}
	stages := in.StagedPlan.Stages
	if len(stages) == 0 {
		r.Errors = append(r.Errors, Error{
			Field:   "stagedPlan",
			Message: "a staged rate plan needs at least one stage",
		})
		return r
	}
	if len(stages) > constants.MaxRateStages {
		r.Errors = append(r.Errors, Error{
			Field: "stagedPlan",
			Message: fmt.Sprintf("a staged rate plan allows at most %d stages, got %d",
				constants.MaxRateStages, len(stages)),
		})
	}
	for i, stage := range stages {
		if stage.AnnualRate.LessThan(decimal.NewFromFloat(constants.MinAnnualRate)) ||
			stage.AnnualRate.GreaterThan(decimal.NewFromFloat(constants.MaxAnnualRate)) {
			r.Errors = append(r.Errors, Error{
				Field: fmt.Sprintf("stagedPlan.stages[%d].annualRate", i),
				Message: fmt.Sprintf("stage %d annual rate must be between %.3f and %.2f, got %s",
					i+1, constants.MinAnnualRate, constants.MaxAnnualRate, stage.AnnualRate),
			})
		}
		if stage.Years < 1 || stage.Years > in.LoanTermYears {
			r.Errors = append(r.Errors, Error{
				Field: fmt.Sprintf("stagedPlan.stages[%d].years", i),
				Message: fmt.Sprintf("stage %d duration must be between 1 and %d years, got %d",
					i+1, in.LoanTermYears, stage.Years),
			})
		}
	}
	if total := in.StagedPlan.TotalYears(); total != in.LoanTermYears {
		shortfall := in.LoanTermYears - total
		var detail, fix string
		if shortfall > 0 {
			detail = fmt.Sprintf("%d year(s) short", shortfall)
			fix = fmt.Sprintf("add %d year(s) to the final stage", shortfall)
		} else {
			detail = fmt.Sprintf("%d year(s) over", -shortfall)
			fix = fmt.Sprintf("remove %d year(s) from the final stage", -shortfall)
		}
		r.Errors = append(r.Errors, Error{
			Field: "stagedPlan",
			Message: fmt.Sprintf("stage years total %d but the loan term is %d years (%s)",
				total, in.LoanTermYears, detail),
		})
		r.Infos = append(r.Infos, Info{
			Field:          "stagedPlan",
			Message:        "the staged plan does not cover the loan term exactly",
			Recommendation: fix,
		})
	}
	return r
}

func warnHighLoanRatio(in *loan.Input) Report {
	var r Report
	// Strictly greater than the threshold; exactly 80% is acceptable.
	if in.EffectiveLoanRatio().GreaterThan(decimal.NewFromFloat(constants.HighLoanRatioThreshold)) {
		r.Warnings = append(r.Warnings, Warning{
			Field: "loanRatio",
			Message: fmt.Sprintf("loan ratio %s%% exceeds %.0f%% of the financeable base",
				in.EffectiveLoanRatio().Mul(decimal.NewFromInt(100)).StringFixed(1),
				constants.HighLoanRatioThreshold*100),
			Suggestion: "increase the down payment to lower the financed share",
		})
	}
	return r
}

func warnPaymentBurden(in *loan.Input) Report {
	var r Report
	payment := schedule.EstimateMonthlyPayment(in)
	limit := in.HousePrice.Mul(decimal.NewFromFloat(constants.PaymentToPriceWarningRatio))
	if limit.IsPositive() && payment.GreaterThan(limit) {
		r.Warnings = append(r.Warnings, Warning{
			Field: "loanTermYears",
			Message: fmt.Sprintf("estimated monthly payment %s exceeds %.1f%% of the house price",
				payment.StringFixed(2), constants.PaymentToPriceWarningRatio*100),
			Suggestion: "extend the loan term or increase the down payment",
		})
	}
	return r
}

func warnLongGrace(in *loan.Input) Report {
	var r Report
	if in.Grace != nil && in.Grace.Years >= constants.LongGraceYearsThreshold {
		r.Warnings = append(r.Warnings, Warning{
			Field: "grace.years",
			Message: fmt.Sprintf("a %d-year grace period defers a lot of principal",
				in.Grace.Years),
			Suggestion: "review whether the post-grace payment remains affordable",
		})
	}
	return r
}

func warnShortRepayment(in *loan.Input) Report {
	var r Report
	if in.Grace != nil && in.Grace.IncludedInTerm &&
		in.RepaymentMonths() < constants.ShortRepaymentYearsThreshold*constants.MonthsPerYear {
		r.Warnings = append(r.Warnings, Warning{
			Field: "grace.years",
			Message: fmt.Sprintf("only %d repayment months remain after the in-term grace period",
				in.RepaymentMonths()),
			Suggestion: "reconsider how much of the term the grace period consumes",
		})
	}
	return r
}

func warnHighRenovation(in *loan.Input) Report {
	var r Report
	limit := in.HousePrice.Mul(decimal.NewFromFloat(constants.HighRenovationRatioThreshold))
	if in.RenovationFees.GreaterThan(limit) {
		r.Warnings = append(r.Warnings, Warning{
			Field: "renovationFees",
			Message: fmt.Sprintf("renovation fees %s exceed %.0f%% of the house price",
				in.RenovationFees, constants.HighRenovationRatioThreshold*100),
			Suggestion: "double-check the renovation budget",
		})
	}
	return r
}

func warnHighTotalInvestment(in *loan.Input) Report {
	var r Report
	if in.TotalInvestmentCost().GreaterThan(decimal.NewFromInt(constants.HighTotalInvestmentThreshold)) {
		r.Warnings = append(r.Warnings, Warning{
			Field: "housePrice",
			Message: fmt.Sprintf("total investment cost %s exceeds %d",
				in.TotalInvestmentCost(), constants.HighTotalInvestmentThreshold),
			Suggestion: "confirm the overall budget before committing",
		})
	}
	return r
}

func noteLowDownPayment(in *loan.Input) Report {
	var r Report
	if in.HousePrice.IsPositive() &&
		in.DownPaymentRatio().LessThan(decimal.NewFromFloat(constants.LowDownPaymentRatioThreshold)) {
		r.Infos = append(r.Infos, Info{
			Field: "downPayment",
			Message: fmt.Sprintf("down payment covers %s%% of the house price",
				in.DownPaymentRatio().Mul(decimal.NewFromInt(100)).StringFixed(1)),
			Recommendation: fmt.Sprintf("consider raising the down payment to %.0f%%",
				constants.LowDownPaymentRatioThreshold*100),
		})
	}
	return r
}

func notePromotionalRate(in *loan.Input) Report {
	var r Report
	if in.RateMode == loan.RateFixed && in.FixedAnnualRate.IsPositive() &&
		in.FixedAnnualRate.LessThan(decimal.NewFromFloat(constants.PromotionalRateThreshold)) {
		r.Infos = append(r.Infos, Info{
			Field: "fixedAnnualRate",
			Message: fmt.Sprintf("annual rate %s is unusually low", in.FixedAnnualRate),
			Recommendation: "verify whether this is a promotional rate subject to a future reset",
		})
	}
	return r
}
