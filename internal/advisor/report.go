// Package advisor evaluates a loan input against hard constraints, risk
// heuristics, and best-practice notes. Evaluation is pure and
// deterministic: the report is the concatenation of an ordered list of
// independent rule evaluators, none of which reads another rule's output.
package advisor

// Error is a blocking finding; the caller must not calculate while any
// exist.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Warning is a non-blocking risk finding with an optional remediation.
type Warning struct {
	Field      string `json:"field"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Info is a non-blocking advisory note.
type Info struct {
	Field          string `json:"field"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Report classifies every finding for one input.
type Report struct {
	Errors   []Error   `json:"errors"`
	Warnings []Warning `json:"warnings"`
	Infos    []Info    `json:"infos"`
}

// IsValid is true iff no blocking errors were found. Warnings and infos
// never block.
func (r *Report) IsValid() bool {
	return len(r.Errors) == 0
}

// merge appends another report's findings in order.
func (r *Report) merge(other Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Infos = append(r.Infos, other.Infos...)
}
