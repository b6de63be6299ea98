package loan

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestEffectiveLoanAmountAndRatio(t *testing.T) {
	tests := []struct {
		name           string
		input          Input
		expectedAmount string
		expectedRatio  string
	}{
		{
			name: "Ratio-driven sizing",
			input: Input{
				HousePrice:  d("10000000"),
				DownPayment: d("2000000"),
				SizingMode:  SizeByRatio,
				LoanRatio:   d("0.8"),
			},
			expectedAmount: "6400000",
			expectedRatio:  "0.8",
		},
		{
			name: "Amount-driven sizing",
			input: Input{
				HousePrice:  d("10000000"),
				DownPayment: d("2000000"),
				SizingMode:  SizeByAmount,
				LoanAmount:  d("4000000"),
			},
			expectedAmount: "4000000",
			expectedRatio:  "0.5",
		},
		{
			name: "Amount-driven with zero base stays zero-safe",
			input: Input{
				HousePrice:  d("5000000"),
				DownPayment: d("5000000"),
				SizingMode:  SizeByAmount,
				LoanAmount:  d("1000000"),
			},
			expectedAmount: "1000000",
			expectedRatio:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if amount := tt.input.EffectiveLoanAmount(); !amount.Equal(d(tt.expectedAmount)) {
				t.Errorf("EffectiveLoanAmount() = %s, expected %s", amount, tt.expectedAmount)
			}
			if ratio := tt.input.EffectiveLoanRatio(); !ratio.Equal(d(tt.expectedRatio)) {
				t.Errorf("EffectiveLoanRatio() = %s, expected %s", ratio, tt.expectedRatio)
			}
		})
	}
}

func TestGraceAndRepaymentMonths(t *testing.T) {
	tests := []struct {
		name              string
		input             Input
		expectedGrace     int
		expectedRepayment int
	}{
		{
			name:              "No grace period",
			input:             Input{LoanTermYears: 30},
			expectedGrace:     0,
			expectedRepayment: 360,
		},
		{
			name: "Grace included in term",
			input: Input{
				LoanTermYears: 20,
				Grace:         &GracePeriod{Years: 2, IncludedInTerm: true},
			},
			expectedGrace:     24,
			expectedRepayment: 216,
		},
		{
			name: "Grace stacked on top of term",
			input: Input{
				LoanTermYears: 20,
				Grace:         &GracePeriod{Years: 2},
			},
			expectedGrace:     24,
			expectedRepayment: 240,
		},
		{
			name: "Degenerate grace never yields negative months",
			input: Input{
				LoanTermYears: 2,
				Grace:         &GracePeriod{Years: 3, IncludedInTerm: true},
			},
			expectedGrace:     36,
			expectedRepayment: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if months := tt.input.GraceMonths(); months != tt.expectedGrace {
				t.Errorf("GraceMonths() = %d, expected %d", months, tt.expectedGrace)
			}
			if months := tt.input.RepaymentMonths(); months != tt.expectedRepayment {
				t.Errorf("RepaymentMonths() = %d, expected %d", months, tt.expectedRepayment)
			}
		})
	}
}

func TestCostDerivations(t *testing.T) {
	input := Input{
		HousePrice:     d("10000000"),
		DownPayment:    d("2000000"),
		MiscFees:       d("300000"),
		RenovationFees: d("700000"),
	}

	if cost := input.TotalInvestmentCost(); !cost.Equal(d("11000000")) {
		t.Errorf("TotalInvestmentCost() = %s, expected 11000000", cost)
	}
	if cash := input.InitialCash(); !cash.Equal(d("3000000")) {
		t.Errorf("InitialCash() = %s, expected 3000000", cash)
	}
	if ratio := input.DownPaymentRatio(); !ratio.Equal(d("0.2")) {
		t.Errorf("DownPaymentRatio() = %s, expected 0.2", ratio)
	}
}

func TestFirstMonthlyRate(t *testing.T) {
	fixed := Input{
		RateMode:        RateFixed,
		FixedAnnualRate: d("0.024"),
	}
	if rate := fixed.FirstMonthlyRate(); !rate.Equal(d("0.002")) {
		t.Errorf("FirstMonthlyRate() = %s, expected 0.002", rate)
	}

	staged := Input{
		RateMode: RateStaged,
		StagedPlan: StagedRatePlan{Stages: []RateStage{
			{AnnualRate: d("0.012"), Years: 5},
			{AnnualRate: d("0.048"), Years: 25},
		}},
	}
	if rate := staged.FirstMonthlyRate(); !rate.Equal(d("0.001")) {
		t.Errorf("FirstMonthlyRate() = %s, expected 0.001", rate)
	}

	empty := Input{RateMode: RateStaged}
	if rate := empty.FirstMonthlyRate(); !rate.IsZero() {
		t.Errorf("FirstMonthlyRate() on empty plan = %s, expected 0", rate)
	}
}

func TestWithoutGrace(t *testing.T) {
	input := Input{
		LoanTermYears: 20,
		Grace:         &GracePeriod{Years: 2, IncludedInTerm: true},
	}

	baseline := input.WithoutGrace()
	if baseline.Grace != nil {
		t.Errorf("WithoutGrace() should drop the grace period")
	}
	if baseline.RepaymentMonths() != 240 {
		t.Errorf("WithoutGrace().RepaymentMonths() = %d, expected 240", baseline.RepaymentMonths())
	}
	if input.Grace == nil {
		t.Errorf("WithoutGrace() must not mutate the original input")
	}
}
