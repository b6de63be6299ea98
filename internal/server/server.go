// Package server exposes the validation and amortization engines over a
// small JSON API. The server owns no state beyond its logger and the
// calculator it delegates to; every request is one pure calculation.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/mortgage-calc/internal/advisor"
	"github.com/iwvelando/mortgage-calc/internal/cache"
	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/internal/schedule"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

type handler struct {
	logger       *zap.Logger
	calc         cache.Calculator
	maxBodyBytes int64
	version      string
}

// NewHandler constructs the HTTP handler serving the mortgage API. The
// calculator may be the bare engine or a caching wrapper.
func NewHandler(logger *zap.Logger, calc cache.Calculator, maxBodyBytes int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = schedule.NewCalculator(logger)
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = constants.DefaultMaxBodyBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, calc: calc, maxBodyBytes: maxBodyBytes, version: trimmedVersion}

	mux := http.NewServeMux()

	// Validation report without calculating
	mux.HandleFunc("/api/validate", h.handleValidate)

	// Validate-then-calculate
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Scenario download as YAML
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type validationResponse struct {
	IsValid     bool              `json:"isValid"`
	Errors      []advisor.Error   `json:"errors"`
	Warnings    []advisor.Warning `json:"warnings"`
	Infos       []advisor.Info    `json:"infos"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

type calculateResponse struct {
	Validation validationResponse          `json:"validation"`
	Result     *schedule.CalculationResult `json:"result"`
}

func buildValidationResponse(input *loan.Input) validationResponse {
	report := advisor.Validate(input)
	return validationResponse{
		IsValid:     report.IsValid(),
		Errors:      report.Errors,
		Warnings:    report.Warnings,
		Infos:       report.Infos,
		Suggestions: advisor.CorrectionSuggestions(input),
	}
}

func (h *handler) decodeInput(w http.ResponseWriter, r *http.Request) (*loan.Input, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return nil, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var input loan.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodyBytes))
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode input: %v", err))
		return nil, false
	}
	return &input, true
}

func (h *handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, buildValidationResponse(input))
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	validation := buildValidationResponse(input)
	if !validation.IsValid {
		h.respondJSON(w, http.StatusUnprocessableEntity, calculateResponse{Validation: validation})
		return
	}

	result, err := h.calc.Calculate(input)
	if err != nil {
		h.logger.Error("calculation failed for validated input",
			zap.String("op", "server.handleCalculate"),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("calculation failed: %v", err))
		return
	}

	h.respondJSON(w, http.StatusOK, calculateResponse{Validation: validation, Result: result})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	encoded, err := yaml.Marshal(input)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode scenario: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="scenario.yaml"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(encoded)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
