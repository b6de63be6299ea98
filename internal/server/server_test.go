package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/mortgage-calc/internal/loan"
)

const soundBody = `{
	"housePrice": "10000000",
	"downPayment": "2000000",
	"sizingMode": "ratio",
	"loanRatio": "0.7",
	"loanTermYears": 30,
	"rateMode": "fixed",
	"fixedAnnualRate": "0.03",
	"repaymentMethod": "equalInstallment"
}`

const brokenBody = `{
	"housePrice": "10000000",
	"downPayment": "2000000",
	"sizingMode": "ratio",
	"loanRatio": "0.7",
	"loanTermYears": 60,
	"rateMode": "fixed",
	"fixedAnnualRate": "0.03",
	"repaymentMethod": "equalInstallment"
}`

func newTestHandler() http.Handler {
	return NewHandler(zap.NewNop(), nil, 0, "1.2.3-test")
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestValidateEndpoint(t *testing.T) {
	h := newTestHandler()

	t.Run("Sound input", func(t *testing.T) {
		rec := postJSON(t, h, "/api/validate", soundBody)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200; body: %s", rec.Code, rec.Body)
		}

		var resp validationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if !resp.IsValid {
			t.Errorf("IsValid = false, errors: %v", resp.Errors)
		}
	})

	t.Run("Broken input still returns 200 with the report", func(t *testing.T) {
		rec := postJSON(t, h, "/api/validate", brokenBody)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}

		var resp validationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.IsValid {
			t.Errorf("IsValid = true for a 60-year term")
		}
		if len(resp.Errors) == 0 {
			t.Errorf("expected at least one error")
		}
		if len(resp.Suggestions) == 0 {
			t.Errorf("expected a correction suggestion for the oversized term")
		}
	})

	t.Run("GET is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/validate", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, expected 405", rec.Code)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		rec := postJSON(t, h, "/api/validate", "{not json")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", rec.Code)
		}
	})
}

func TestCalculateEndpoint(t *testing.T) {
	h := newTestHandler()

	t.Run("Sound input returns the full result", func(t *testing.T) {
		rec := postJSON(t, h, "/api/calculate", soundBody)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200; body: %s", rec.Code, rec.Body)
		}

		var resp calculateResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Result == nil {
			t.Fatalf("result missing from response")
		}
		if len(resp.Result.Schedule) != 360 {
			t.Errorf("got %d schedule rows, expected 360", len(resp.Result.Schedule))
		}
		final := resp.Result.Schedule[359]
		if !final.RemainingBalance.IsZero() {
			t.Errorf("final balance = %s, expected 0", final.RemainingBalance)
		}
	})

	t.Run("Invalid input is rejected before calculating", func(t *testing.T) {
		rec := postJSON(t, h, "/api/calculate", brokenBody)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, expected 422", rec.Code)
		}

		var resp calculateResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Result != nil {
			t.Errorf("no result expected alongside a failed validation")
		}
		if resp.Validation.IsValid {
			t.Errorf("IsValid = true on a 422 response")
		}
	})
}

func TestExportEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/export", soundBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body: %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/x-yaml" {
		t.Errorf("Content-Type = %q, expected application/x-yaml", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "scenario.yaml") {
		t.Errorf("Content-Disposition = %q, expected a scenario.yaml attachment", got)
	}

	// The exported document must carry the scenario under its YAML keys.
	var doc map[string]interface{}
	if err := yaml.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decoding exported YAML: %v", err)
	}
	if got := doc["loanTermYears"]; got != 30 {
		t.Errorf("exported term = %v, expected 30", got)
	}
	if got := doc["rateMode"]; got != string(loan.RateFixed) {
		t.Errorf("exported rate mode = %v, expected fixed", got)
	}
	if got := doc["housePrice"]; got != "10000000" {
		t.Errorf("exported house price = %v, expected 10000000", got)
	}
}

func TestVersionEndpoint(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["version"] != "1.2.3-test" {
		t.Errorf("version = %q, expected 1.2.3-test", resp["version"])
	}
}

func TestBodySizeLimit(t *testing.T) {
	h := NewHandler(zap.NewNop(), nil, 64, "dev")

	rec := postJSON(t, h, "/api/validate", soundBody)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, expected 413", rec.Code)
	}
}
