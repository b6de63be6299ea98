package schedule

import (
	"github.com/shopspring/decimal"
)

// PaymentPeriod is one row of the amortization schedule.
type PaymentPeriod struct {
	PeriodIndex int `json:"periodIndex"`
	YearIndex   int `json:"yearIndex"`
	MonthInYear int `json:"monthInYear"`

	// StageNumber is the 1-based rate stage the row belongs to; zero for
	// fixed-rate and grace rows.
	StageNumber int `json:"stageNumber,omitempty"`

	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`

	CumulativePayment   decimal.Decimal `json:"cumulativePayment"`
	CumulativePrincipal decimal.Decimal `json:"cumulativePrincipal"`
	CumulativeInterest  decimal.Decimal `json:"cumulativeInterest"`

	AppliedMonthlyRate decimal.Decimal `json:"appliedMonthlyRate"`
	IsGracePeriod      bool            `json:"isGracePeriod"`
}

// PeriodSummary aggregates a 3-year window of schedule rows.
type PeriodSummary struct {
	StartYear int `json:"startYear"`
	EndYear   int `json:"endYear"`

	AverageLoanPayment decimal.Decimal `json:"averagePayment"`
	AveragePrincipal   decimal.Decimal `json:"averagePrincipal"`
	AverageInterest    decimal.Decimal `json:"averageInterest"`

	TotalPayment   decimal.Decimal `json:"totalPayment"`
	TotalPrincipal decimal.Decimal `json:"totalPrincipal"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`

	PrincipalPercent decimal.Decimal `json:"principalPercent"`
	InterestPercent  decimal.Decimal `json:"interestPercent"`

	EndingBalance decimal.Decimal `json:"endingBalance"`
}

// YearlyAnalysis sums one calendar year of the schedule.
type YearlyAnalysis struct {
	Year             int             `json:"year"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	PrincipalPercent decimal.Decimal `json:"principalPercent"`
	InterestPercent  decimal.Decimal `json:"interestPercent"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// InterestPrincipalAnalysis breaks the whole schedule into principal and
// interest, overall and per year.
type InterestPrincipalAnalysis struct {
	TotalPrincipal   decimal.Decimal  `json:"totalPrincipal"`
	TotalInterest    decimal.Decimal  `json:"totalInterest"`
	PrincipalPercent decimal.Decimal  `json:"principalPercent"`
	InterestPercent  decimal.Decimal  `json:"interestPercent"`
	Years            []YearlyAnalysis `json:"years"`
}

// GracePeriodResult compares a grace-adjusted plan against the same input
// recomputed without any grace period.
type GracePeriodResult struct {
	GraceMonthlyPayment     decimal.Decimal `json:"graceMonthlyPayment"`
	GraceTotalInterest      decimal.Decimal `json:"graceTotalInterest"`
	PostGraceMonthlyPayment decimal.Decimal `json:"postGraceMonthlyPayment"`
	PostGraceTotalInterest  decimal.Decimal `json:"postGraceTotalInterest"`

	PaymentIncrease        decimal.Decimal `json:"paymentIncrease"`
	PaymentIncreasePercent decimal.Decimal `json:"paymentIncreasePercent"`
	TotalInterestIncrease  decimal.Decimal `json:"totalInterestIncrease"`

	TotalMonths int `json:"totalMonths"`
}

// CalculationResult is the aggregate output of one engine invocation.
type CalculationResult struct {
	EffectiveLoanAmount decimal.Decimal `json:"effectiveLoanAmount"`
	InitialCash         decimal.Decimal `json:"initialCash"`
	TotalInvestmentCost decimal.Decimal `json:"totalInvestmentCost"`

	// MonthlyPayment is the representative payment: the average over
	// non-grace rows.
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`

	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalPayment  decimal.Decimal `json:"totalPayment"`

	GraceInfo *GracePeriodResult `json:"graceInfo,omitempty"`

	Schedule        []PaymentPeriod           `json:"schedule"`
	PeriodSummaries []PeriodSummary           `json:"periodSummaries"`
	Analysis        InterestPrincipalAnalysis `json:"analysis"`
}
