package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// Scenario describes one loan in presentation-friendly units: percentages
// as percent numbers (2.5 means 2.5%) and money as plain decimals.
type Scenario struct {
	HousePrice  float64 `yaml:"housePrice"`
	DownPayment float64 `yaml:"downPayment"`

	SizingMode       string  `yaml:"sizingMode,omitempty"` // ratio (default), amount
	LoanRatioPercent float64 `yaml:"loanRatioPercent,omitempty"`
	LoanAmount       float64 `yaml:"loanAmount,omitempty"`

	LoanTermYears int `yaml:"loanTermYears"`

	AnnualRatePercent float64         `yaml:"annualRatePercent,omitempty"`
	RateStages        []ScenarioStage `yaml:"rateStages,omitempty"`

	GraceYears          int  `yaml:"graceYears,omitempty"`
	GraceIncludedInTerm bool `yaml:"graceIncludedInTerm,omitempty"`

	RepaymentMethod string `yaml:"repaymentMethod,omitempty"` // equalInstallment (default), equalPrincipal

	MiscFees       float64 `yaml:"miscFees,omitempty"`
	RenovationFees float64 `yaml:"renovationFees,omitempty"`
}

// ScenarioStage is one staged-rate segment in presentation units.
type ScenarioStage struct {
	AnnualRatePercent float64 `yaml:"annualRatePercent"`
	Years             int     `yaml:"years"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading scenario file, %s", err)
	}

	var scenario Scenario
	if err := v.Unmarshal(&scenario); err != nil {
		return nil, fmt.Errorf("unable to decode scenario into struct, %s", err)
	}
	return &scenario, nil
}

// ToLoanInput converts the presentation-unit scenario into the engine's
// decimal input record.
func (s *Scenario) ToLoanInput() (*loan.Input, error) {
	input := &loan.Input{
		HousePrice:     decimal.NewFromFloat(s.HousePrice),
		DownPayment:    decimal.NewFromFloat(s.DownPayment),
		LoanTermYears:  s.LoanTermYears,
		MiscFees:       decimal.NewFromFloat(s.MiscFees),
		RenovationFees: decimal.NewFromFloat(s.RenovationFees),
	}

	switch s.SizingMode {
	case "", "ratio":
		input.SizingMode = loan.SizeByRatio
		input.LoanRatio = percentToFraction(s.LoanRatioPercent)
	case "amount":
		input.SizingMode = loan.SizeByAmount
		input.LoanAmount = decimal.NewFromFloat(s.LoanAmount)
	default:
		return nil, fmt.Errorf("unknown sizing mode %q", s.SizingMode)
	}

	if len(s.RateStages) > 0 {
		input.RateMode = loan.RateStaged
		for _, stage := range s.RateStages {
			input.StagedPlan.Stages = append(input.StagedPlan.Stages, loan.RateStage{
				AnnualRate: percentToFraction(stage.AnnualRatePercent),
				Years:      stage.Years,
			})
		}
	} else {
		input.RateMode = loan.RateFixed
		input.FixedAnnualRate = percentToFraction(s.AnnualRatePercent)
	}

	if s.GraceYears > 0 {
		input.Grace = &loan.GracePeriod{
			Years:          s.GraceYears,
			IncludedInTerm: s.GraceIncludedInTerm,
		}
	}

	switch s.RepaymentMethod {
	case "", "equalInstallment":
		input.RepaymentMethod = loan.EqualInstallment
	case "equalPrincipal":
		input.RepaymentMethod = loan.EqualPrincipal
	default:
		return nil, fmt.Errorf("unknown repayment method %q", s.RepaymentMethod)
	}

	return input, nil
}

func percentToFraction(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).Div(decimal.NewFromFloat(constants.PercentageMultiplier))
}
