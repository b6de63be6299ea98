// Package loan defines the loan input model: the parameters of one mortgage
// scenario plus the pure derivations the engine and advisor consume. Only
// the driving field of each duality (ratio vs amount, fixed vs staged) is
// stored; its counterpart is always recomputed, never read stale.
package loan

import (
	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

// SizingMode selects which of loan ratio and loan amount drives sizing.
type SizingMode string

const (
	// SizeByRatio derives the loan amount from the ratio.
	SizeByRatio SizingMode = "ratio"

	// SizeByAmount derives the ratio from the loan amount.
	SizeByAmount SizingMode = "amount"
)

// RateMode selects between a single fixed rate and a staged plan.
type RateMode string

const (
	// RateFixed applies one annual rate for the whole term.
	RateFixed RateMode = "fixed"

	// RateStaged applies a StagedRatePlan's stages in order.
	RateStaged RateMode = "staged"
)

// RepaymentMethod selects the amortization style.
type RepaymentMethod string

const (
	// EqualInstallment keeps the total payment constant per period.
	EqualInstallment RepaymentMethod = "equalInstallment"

	// EqualPrincipal keeps the principal portion constant per period.
	EqualPrincipal RepaymentMethod = "equalPrincipal"
)

// GracePeriod describes an interest-only phase at the start of the loan.
type GracePeriod struct {
	Years          int  `json:"years" yaml:"years"`
	IncludedInTerm bool `json:"includedInTerm" yaml:"includedInTerm"`
}

// Input holds all parameters for one mortgage calculation. It is built
// fresh per request and treated as immutable for the duration of one
// engine invocation.
type Input struct {
	HousePrice  decimal.Decimal `json:"housePrice" yaml:"housePrice"`
	DownPayment decimal.Decimal `json:"downPayment" yaml:"downPayment"`

	SizingMode SizingMode      `json:"sizingMode" yaml:"sizingMode"`
	LoanRatio  decimal.Decimal `json:"loanRatio" yaml:"loanRatio"`
	LoanAmount decimal.Decimal `json:"loanAmount" yaml:"loanAmount"`

	LoanTermYears int `json:"loanTermYears" yaml:"loanTermYears"`

	RateMode        RateMode        `json:"rateMode" yaml:"rateMode"`
	FixedAnnualRate decimal.Decimal `json:"fixedAnnualRate" yaml:"fixedAnnualRate"`
	StagedPlan      StagedRatePlan  `json:"stagedPlan" yaml:"stagedPlan"`

	Grace *GracePeriod `json:"grace,omitempty" yaml:"grace,omitempty"`

	RepaymentMethod RepaymentMethod `json:"repaymentMethod" yaml:"repaymentMethod"`

	MiscFees       decimal.Decimal `json:"miscFees" yaml:"miscFees"`
	RenovationFees decimal.Decimal `json:"renovationFees" yaml:"renovationFees"`
}

// FinanceableBase returns house price minus down payment, the base the
// loan ratio is taken against.
func (in *Input) FinanceableBase() decimal.Decimal {
	return in.HousePrice.Sub(in.DownPayment)
}

// EffectiveLoanAmount resolves the sizing duality to a concrete amount.
func (in *Input) EffectiveLoanAmount() decimal.Decimal {
	if in.SizingMode == SizeByAmount {
		return in.LoanAmount
	}
	return in.FinanceableBase().Mul(in.LoanRatio)
}

// EffectiveLoanRatio resolves the sizing duality to a concrete ratio.
func (in *Input) EffectiveLoanRatio() decimal.Decimal {
	if in.SizingMode == SizeByAmount {
		return mathutil.SafeDiv(in.LoanAmount, in.FinanceableBase())
	}
	return in.LoanRatio
}

// EffectiveAnnualRate returns the fixed rate, or the weighted average for
// staged plans. For staged plans this is an estimate input only; the
// schedule of record always walks the stages themselves.
func (in *Input) EffectiveAnnualRate() decimal.Decimal {
	if in.RateMode == RateStaged {
		return in.StagedPlan.WeightedAverageAnnualRate()
	}
	return in.FixedAnnualRate
}

// EffectiveMonthlyRate is EffectiveAnnualRate divided by 12.
func (in *Input) EffectiveMonthlyRate() decimal.Decimal {
	return in.EffectiveAnnualRate().Div(mathutil.Twelve)
}

// FirstMonthlyRate returns the rate applied during the earliest months:
// the fixed monthly rate, or the first stage's monthly rate. Grace-period
// interest accrues at this rate.
func (in *Input) FirstMonthlyRate() decimal.Decimal {
	if in.RateMode == RateStaged {
		if len(in.StagedPlan.Stages) == 0 {
			return mathutil.Zero
		}
		return in.StagedPlan.Stages[0].MonthlyRate()
	}
	return in.FixedAnnualRate.Div(mathutil.Twelve)
}

// GraceMonths returns the grace phase length in months, zero when absent.
func (in *Input) GraceMonths() int {
	if in.Grace == nil {
		return 0
	}
	return in.Grace.Years * constants.MonthsPerYear
}

// RepaymentMonths returns the number of principal-repaying months. A grace
// period included in the stated term shortens repayment; one stacked on
// top of the term does not.
func (in *Input) RepaymentMonths() int {
	years := in.LoanTermYears
	if in.Grace != nil && in.Grace.IncludedInTerm {
		years -= in.Grace.Years
	}
	if years < 0 {
		years = 0
	}
	return years * constants.MonthsPerYear
}

// TotalInvestmentCost is house price plus all fees.
func (in *Input) TotalInvestmentCost() decimal.Decimal {
	return in.HousePrice.Add(in.MiscFees).Add(in.RenovationFees)
}

// InitialCash is the cash due up front: down payment plus all fees.
func (in *Input) InitialCash() decimal.Decimal {
	return in.DownPayment.Add(in.MiscFees).Add(in.RenovationFees)
}

// DownPaymentRatio returns down payment over house price, zero-safe.
func (in *Input) DownPaymentRatio() decimal.Decimal {
	return mathutil.SafeDiv(in.DownPayment, in.HousePrice)
}

// WithoutGrace returns a copy of the input with the grace period removed,
// used as the baseline for grace-period comparisons.
func (in *Input) WithoutGrace() *Input {
	baseline := *in
	baseline.Grace = nil
	return &baseline
}
