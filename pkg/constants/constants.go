// Package constants provides shared constants for the mortgage-calc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// SummaryWindowYears is the span of one period summary window
	SummaryWindowYears = 3
)

// Input bounds enforced by the advisor's range rules
const (
	// MinHousePrice is the lowest accepted house price
	MinHousePrice = 1_000_000

	// MaxHousePrice is the highest accepted house price
	MaxHousePrice = 100_000_000

	// MinLoanTermYears is the shortest accepted loan term
	MinLoanTermYears = 1

	// MaxLoanTermYears is the longest accepted loan term
	MaxLoanTermYears = 40

	// MinAnnualRate is the lowest accepted annual rate (as a fraction)
	MinAnnualRate = 0.001

	// MaxAnnualRate is the highest accepted annual rate (as a fraction)
	MaxAnnualRate = 0.20

	// MinLoanRatio is the lowest accepted loan ratio
	MinLoanRatio = 0.10

	// MaxLoanRatio is the highest accepted loan ratio
	MaxLoanRatio = 0.90

	// MinGraceYears is the shortest accepted grace period
	MinGraceYears = 1

	// MaxGraceYears is the longest accepted grace period
	MaxGraceYears = 5

	// MaxMiscFees is the highest accepted miscellaneous fee total
	MaxMiscFees = 10_000_000

	// MaxRenovationFees is the highest accepted renovation fee total
	MaxRenovationFees = 50_000_000

	// MaxRateStages is the maximum number of stages in a staged rate plan
	MaxRateStages = 10
)

// Advisory thresholds used by warning and info rules
const (
	// HighLoanRatioThreshold triggers the high-leverage warning when exceeded
	HighLoanRatioThreshold = 0.80

	// PaymentToPriceWarningRatio is the monthly payment fraction of house
	// price above which affordability is flagged
	PaymentToPriceWarningRatio = 0.008

	// LongGraceYearsThreshold triggers the post-grace affordability warning
	LongGraceYearsThreshold = 3

	// ShortRepaymentYearsThreshold flags a compressed repayment span under
	// grace-included terms
	ShortRepaymentYearsThreshold = 5

	// HighRenovationRatioThreshold flags renovation fees relative to price
	HighRenovationRatioThreshold = 0.30

	// HighTotalInvestmentThreshold flags an unusually large total outlay
	HighTotalInvestmentThreshold = 100_000_000

	// LowDownPaymentRatioThreshold is the down-payment ratio below which the
	// advisor suggests raising it
	LowDownPaymentRatioThreshold = 0.20

	// PromotionalRateThreshold is the annual rate below which a promotional
	// reset note is emitted
	PromotionalRateThreshold = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default application configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultScenarioFile is the default loan scenario file name
	DefaultScenarioFile = "scenario.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (256 KB)
	DefaultMaxBodyBytes int64 = 256 * 1024
)

// Cache defaults
const (
	// DefaultCacheTTLSeconds is the default memoization entry lifetime
	DefaultCacheTTLSeconds = 600
)
