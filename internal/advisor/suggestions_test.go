package advisor

import (
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calc/internal/loan"
)

func TestCorrectionSuggestions(t *testing.T) {
	t.Run("Sound input yields none", func(t *testing.T) {
		if got := CorrectionSuggestions(soundInput()); len(got) != 0 {
			t.Errorf("CorrectionSuggestions() = %v, expected none", got)
		}
	})

	t.Run("Oversized loan amount", func(t *testing.T) {
		input := soundInput()
		input.SizingMode = loan.SizeByAmount
		input.LoanAmount = d("9000000")

		got := CorrectionSuggestions(input)
		if len(got) != 1 {
			t.Fatalf("got %d suggestions, expected 1: %v", len(got), got)
		}
		if !strings.Contains(got[0], "8000000") {
			t.Errorf("suggestion %q should name the computed maximum of 8000000", got[0])
		}
	})

	t.Run("Multiple defects compound", func(t *testing.T) {
		input := soundInput()
		input.LoanTermYears = 45
		input.RateMode = loan.RateStaged
		input.StagedPlan = loan.StagedRatePlan{Stages: []loan.RateStage{
			{AnnualRate: d("0.02"), Years: 40},
		}}

		got := CorrectionSuggestions(input)
		if len(got) != 2 {
			t.Fatalf("got %d suggestions, expected 2: %v", len(got), got)
		}
		if !strings.Contains(got[0], "shorten the loan term") {
			t.Errorf("first suggestion %q should address the term", got[0])
		}
		if !strings.Contains(got[1], "total 45 years") {
			t.Errorf("second suggestion %q should address the staged plan", got[1])
		}
	})
}
