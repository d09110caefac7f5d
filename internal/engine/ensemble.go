package engine

import (
	"fmt"

	"github.com/docuflow/docuflow/internal/model"
)

// Weights configures the ensemble decision policy.
type Weights struct {
	// Rule and ML weight the two confidences when both methods agree.
	Rule float64
	ML   float64
	// Dominance is the confidence at which one method overrides the other,
	// provided the other sits below Weak.
	Dominance float64
	Weak      float64
	// Penalty is subtracted from the winner's confidence when the methods
	// disagree without dominance; Floor bounds the penalized confidence.
	Penalty float64
	Floor   float64
}

// DefaultWeights returns the canonical ensemble configuration.
func DefaultWeights() Weights {
	return Weights{
		Rule:      0.4,
		ML:        0.6,
		Dominance: 0.7,
		Weak:      0.5,
		Penalty:   0.2,
		Floor:     0.3,
	}
}

// Reconcile combines the rule-based and statistical results into a final
// classification. The decision rules are evaluated in strict order:
// agreement, ML dominance, rule dominance, then plain confidence comparison
// with a disagreement penalty. Each branch records the numbers that
// triggered it.
func Reconcile(rule model.ScoreResult, ml model.Prediction, w Weights) model.EnsembleResult {
	result := model.EnsembleResult{
		Rule: &rule,
		ML:   &ml,
	}

	// Both methods corroborating is the strongest evidence; combine their
	// confidences.
	if rule.Category == ml.Category {
		combined := rule.Confidence*w.Rule + ml.Confidence*w.ML
		if combined > 1.0 {
			combined = 1.0
		}
		result.Category = rule.Category
		result.Confidence = combined
		result.Decision = model.DecisionAgreement
		result.Factors = []string{
			fmt.Sprintf("Both methods classified as %s", rule.Category),
			fmt.Sprintf("Rule confidence: %.2f", rule.Confidence),
			fmt.Sprintf("ML confidence: %.2f", ml.Confidence),
			fmt.Sprintf("Combined confidence: %.2f", combined),
		}
		return result
	}

	// A confident single-method signal is not diluted by a weak, likely
	// noisy signal from the other method.
	if ml.Confidence >= w.Dominance && rule.Confidence < w.Weak {
		result.Category = ml.Category
		result.Confidence = ml.Confidence
		result.Decision = model.DecisionMLOverride
		result.Factors = []string{
			fmt.Sprintf("ML high confidence (%.2f) vs rule low confidence (%.2f)", ml.Confidence, rule.Confidence),
			fmt.Sprintf("Trusting ML classification: %s", ml.Category),
		}
		return result
	}

	if rule.Confidence >= w.Dominance && ml.Confidence < w.Weak {
		result.Category = rule.Category
		result.Confidence = rule.Confidence
		result.Decision = model.DecisionRuleOverride
		result.Factors = []string{
			fmt.Sprintf("Rule high confidence (%.2f) vs ML low confidence (%.2f)", rule.Confidence, ml.Confidence),
			fmt.Sprintf("Trusting rule-based classification: %s", rule.Category),
		}
		return result
	}

	// Disagreement without dominance: take the higher confidence, penalized
	// because disagreement itself is evidence of uncertainty. The floor
	// keeps a real prediction from reporting near-zero confidence.
	if ml.Confidence > rule.Confidence {
		result.Category = ml.Category
		result.Confidence = penalized(ml.Confidence, w)
		result.Decision = model.DecisionDisagreementMLWins
		result.Factors = []string{
			fmt.Sprintf("Methods disagree: ML=%s(%.2f) vs Rule=%s(%.2f)", ml.Category, ml.Confidence, rule.Category, rule.Confidence),
			"Selecting ML result with reduced confidence",
			fmt.Sprintf("Confidence penalty applied: -%.2f", w.Penalty),
		}
		return result
	}

	result.Category = rule.Category
	result.Confidence = penalized(rule.Confidence, w)
	result.Decision = model.DecisionDisagreementRuleWins
	result.Factors = []string{
		fmt.Sprintf("Methods disagree: Rule=%s(%.2f) vs ML=%s(%.2f)", rule.Category, rule.Confidence, ml.Category, ml.Confidence),
		"Selecting rule-based result with reduced confidence",
		fmt.Sprintf("Confidence penalty applied: -%.2f", w.Penalty),
	}
	return result
}

func penalized(confidence float64, w Weights) float64 {
	penalized := confidence - w.Penalty
	if penalized < w.Floor {
		return w.Floor
	}
	return penalized
}
