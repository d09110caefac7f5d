package model

import "fmt"

// ScoreResult is the output of the rule-based scorer.
type ScoreResult struct {
	Scores     map[Category]float64
	Category   Category
	Reasoning  string
	Evidence   []string
	Confidence float64
}

// Prediction is the output of the statistical classifier. Err carries an
// internal failure marker; a degraded prediction is still a valid result.
type Prediction struct {
	Probabilities map[Category]float64
	Category      Category
	Err           string
	TopTerms      []string
	Confidence    float64
}

// Degraded reports whether the prediction came from a classifier failure.
func (p Prediction) Degraded() bool {
	return p.Err != ""
}

// DecisionTag identifies which ensemble rule produced the final result.
type DecisionTag string

// Ensemble decision tags.
const (
	DecisionAgreement            DecisionTag = "agreement"
	DecisionMLOverride           DecisionTag = "ml_override"
	DecisionRuleOverride         DecisionTag = "rule_override"
	DecisionDisagreementMLWins   DecisionTag = "disagreement_ml_wins"
	DecisionDisagreementRuleWins DecisionTag = "disagreement_rule_wins"
	DecisionFailedValidation     DecisionTag = "failed_validation"
)

// EnsembleResult is the final classification output. Rule and ML retain the
// individual classifier results for auditing; Factors records, in order, the
// numbers that triggered the chosen decision rule.
type EnsembleResult struct {
	Rule       *ScoreResult
	ML         *Prediction
	Category   Category
	Decision   DecisionTag
	Factors    []string
	Confidence float64
}

// Explanation renders a human-readable sentence describing the decision.
func (r EnsembleResult) Explanation() string {
	switch r.Decision {
	case DecisionAgreement:
		return fmt.Sprintf("Both rule-based and statistical methods agreed on %q with combined confidence of %.0f%%", r.Category, r.Confidence*100)
	case DecisionMLOverride:
		return fmt.Sprintf("Statistical method had high confidence (%.0f%%) for %q, overriding the rule-based result", r.Confidence*100, r.Category)
	case DecisionRuleOverride:
		return fmt.Sprintf("Rule-based method had high confidence (%.0f%%) for %q, overriding the statistical result", r.Confidence*100, r.Category)
	case DecisionDisagreementMLWins:
		return fmt.Sprintf("Methods disagreed, but statistical confidence was higher for %q (%.0f%%)", r.Category, r.Confidence*100)
	case DecisionDisagreementRuleWins:
		return fmt.Sprintf("Methods disagreed, but rule-based confidence was higher for %q (%.0f%%)", r.Category, r.Confidence*100)
	case DecisionFailedValidation:
		return "Classification failed due to insufficient input text"
	}
	return fmt.Sprintf("Classified as %q with %.0f%% confidence", r.Category, r.Confidence*100)
}
