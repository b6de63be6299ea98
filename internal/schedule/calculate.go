// Package schedule implements the amortization engine: it turns a loan
// input into a period-by-period payment schedule with aggregate totals,
// 3-year summaries, and a principal/interest analysis. Calculation is a
// pure function of its input; the Calculator carries only a logger and is
// safe for concurrent use.
package schedule

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

// Calculator produces amortization schedules.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new Calculator instance.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// LevelPayment computes the constant payment of an equal-installment loan
// via the standard annuity formula. Zero rate short-circuits to straight
// division; non-positive period counts yield a zero payment.
func LevelPayment(principal, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return mathutil.Zero
	}
	n := decimal.NewFromInt(int64(months))
	if monthlyRate.IsZero() {
		return principal.Div(n)
	}
	power := mathutil.Pow(monthlyRate, months)
	return principal.Mul(monthlyRate).Mul(power).Div(power.Sub(mathutil.One))
}

// Calculate generates the full schedule for the given input. It returns an
// error only for structurally impossible inputs (non-positive financed
// amount, no repayment months after all guards); merely unwise inputs are
// the advisor's concern and compute normally.
func (c *Calculator) Calculate(input *loan.Input) (*CalculationResult, error) {
	principal := input.EffectiveLoanAmount()
	if !principal.IsPositive() {
		return nil, fmt.Errorf("effective loan amount must be positive, got %s", principal)
	}

	repayment, err := c.repaymentRows(input, principal)
	if err != nil {
		return nil, err
	}

	grace := c.graceRows(input, principal)
	rows := append(grace, repayment...)
	finalizeRows(rows)

	result := &CalculationResult{
		EffectiveLoanAmount: principal,
		InitialCash:         input.InitialCash(),
		TotalInvestmentCost: input.TotalInvestmentCost(),
		Schedule:            rows,
	}

	repaymentPayment := mathutil.Zero
	for _, row := range rows {
		result.TotalPayment = result.TotalPayment.Add(row.Payment)
		result.TotalInterest = result.TotalInterest.Add(row.InterestPortion)
		if !row.IsGracePeriod {
			repaymentPayment = repaymentPayment.Add(row.Payment)
		}
	}
	// Grace rows are excluded from the representative payment; an
	// interest-only payment is not comparable to an amortizing one.
	result.MonthlyPayment = mathutil.SafeDiv(repaymentPayment, decimal.NewFromInt(int64(len(repayment))))

	// A grace period with a non-positive span produces no rows and behaves
	// exactly like no grace period at all.
	if len(grace) > 0 {
		graceInfo, err := c.compareAgainstNoGrace(input, result, grace)
		if err != nil {
			return nil, err
		}
		result.GraceInfo = graceInfo
	}

	result.PeriodSummaries = buildPeriodSummaries(rows)
	result.Analysis = buildAnalysis(rows)

	c.logger.Debug("calculated amortization schedule",
		zap.String("op", "schedule.Calculate"),
		zap.Int("periods", len(rows)),
		zap.String("monthlyPayment", result.MonthlyPayment.StringFixed(2)),
	)

	return result, nil
}

// graceRows emits the interest-only phase. The balance never moves during
// grace and interest accrues at the first applicable rate.
func (c *Calculator) graceRows(input *loan.Input, principal decimal.Decimal) []PaymentPeriod {
	months := input.GraceMonths()
	if months <= 0 {
		return nil
	}
	rate := input.FirstMonthlyRate()
	interest := principal.Mul(rate)
	rows := make([]PaymentPeriod, 0, months)
	for i := 0; i < months; i++ {
		rows = append(rows, PaymentPeriod{
			Payment:            interest,
			PrincipalPortion:   mathutil.Zero,
			InterestPortion:    interest,
			RemainingBalance:   principal,
			AppliedMonthlyRate: rate,
			IsGracePeriod:      true,
		})
	}
	return rows
}

// repaymentRows builds the principal-repaying phase. Staged plans chain
// constant-rate segments over the carried balance: each stage re-amortizes
// the remaining balance over the months left to maturity at its own rate,
// so the payment legally changes at every rate boundary while the loan
// still terminates at the planned maturity.
func (c *Calculator) repaymentRows(input *loan.Input, principal decimal.Decimal) ([]PaymentPeriod, error) {
	if input.RateMode == loan.RateStaged {
		stages := input.StagedPlan.Stages
		if len(stages) == 0 {
			return nil, fmt.Errorf("staged rate plan has no stages")
		}
		remaining := input.StagedPlan.TotalYears() * constants.MonthsPerYear
		var rows []PaymentPeriod
		balance := principal
		for i, stage := range stages {
			final := i == len(stages)-1
			segment, ending := amortizeSegment(balance, stage.MonthlyRate(), stage.Months(),
				remaining, input.RepaymentMethod, i+1, final)
			rows = append(rows, segment...)
			balance = ending
			remaining -= stage.Months()
		}
		return rows, nil
	}

	months := input.RepaymentMonths()
	if months <= 0 {
		return nil, fmt.Errorf("no repayment months remain for a %d-year term", input.LoanTermYears)
	}
	rate := input.FixedAnnualRate.Div(mathutil.Twelve)
	rows, _ := amortizeSegment(principal, rate, months, months, input.RepaymentMethod, 0, true)
	return rows, nil
}

// amortizeSegment emits months rows of one constant-rate segment. The
// payment is sized over horizon months, the span remaining to maturity, as
// if the segment's rate held until the end; the rows beyond the segment
// belong to later stages. When final is set the last row absorbs rounding
// drift so the balance lands on exactly zero.
func amortizeSegment(balance, monthlyRate decimal.Decimal, months, horizon int,
	method loan.RepaymentMethod, stageNumber int, final bool) ([]PaymentPeriod, decimal.Decimal) {

	if months <= 0 || horizon <= 0 {
		return nil, balance
	}

	levelPayment := mathutil.Zero
	fixedPrincipal := mathutil.Zero
	if method == loan.EqualPrincipal {
		fixedPrincipal = balance.Div(decimal.NewFromInt(int64(horizon)))
	} else {
		levelPayment = LevelPayment(balance, monthlyRate, horizon)
	}

	rows := make([]PaymentPeriod, 0, months)
	for i := 0; i < months; i++ {
		interest := balance.Mul(monthlyRate)

		var principal, payment decimal.Decimal
		if method == loan.EqualPrincipal {
			principal = fixedPrincipal
		} else {
			principal = levelPayment.Sub(interest)
		}
		if final && i == months-1 {
			principal = balance
		}
		payment = principal.Add(interest)

		balance = balance.Sub(principal)
		if balance.IsNegative() {
			balance = mathutil.Zero
		}

		rows = append(rows, PaymentPeriod{
			StageNumber:        stageNumber,
			Payment:            payment,
			PrincipalPortion:   principal,
			InterestPortion:    interest,
			RemainingBalance:   balance,
			AppliedMonthlyRate: monthlyRate,
		})
	}
	return rows, balance
}

// finalizeRows renumbers the concatenated schedule from 1 and fills in the
// running cumulative sums.
func finalizeRows(rows []PaymentPeriod) {
	cumulativePayment := mathutil.Zero
	cumulativePrincipal := mathutil.Zero
	cumulativeInterest := mathutil.Zero
	for i := range rows {
		rows[i].PeriodIndex = i + 1
		rows[i].YearIndex = i/constants.MonthsPerYear + 1
		rows[i].MonthInYear = i%constants.MonthsPerYear + 1

		cumulativePayment = cumulativePayment.Add(rows[i].Payment)
		cumulativePrincipal = cumulativePrincipal.Add(rows[i].PrincipalPortion)
		cumulativeInterest = cumulativeInterest.Add(rows[i].InterestPortion)
		rows[i].CumulativePayment = cumulativePayment
		rows[i].CumulativePrincipal = cumulativePrincipal
		rows[i].CumulativeInterest = cumulativeInterest
	}
}

// compareAgainstNoGrace recomputes the same input without its grace period
// and quantifies what the grace phase costs. Both sides go through the
// authoritative chained calculation; the weighted-average shortcut is
// never used here.
func (c *Calculator) compareAgainstNoGrace(input *loan.Input, result *CalculationResult,
	grace []PaymentPeriod) (*GracePeriodResult, error) {

	baseline, err := c.Calculate(input.WithoutGrace())
	if err != nil {
		return nil, fmt.Errorf("grace baseline calculation: %w", err)
	}

	graceInterest := mathutil.Zero
	for _, row := range grace {
		graceInterest = graceInterest.Add(row.InterestPortion)
	}

	postGracePayment := result.MonthlyPayment
	increase := postGracePayment.Sub(baseline.MonthlyPayment)

	return &GracePeriodResult{
		GraceMonthlyPayment:     grace[0].Payment,
		GraceTotalInterest:      graceInterest,
		PostGraceMonthlyPayment: postGracePayment,
		PostGraceTotalInterest:  result.TotalInterest.Sub(graceInterest),
		PaymentIncrease:         increase,
		PaymentIncreasePercent:  mathutil.Percentage(increase, baseline.MonthlyPayment),
		TotalInterestIncrease:   result.TotalInterest.Sub(baseline.TotalInterest),
		TotalMonths:             len(result.Schedule),
	}, nil
}
