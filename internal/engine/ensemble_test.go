package engine

import (
	"testing"

	"github.com/docuflow/docuflow/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name           string
		rule           model.ScoreResult
		ml             model.Prediction
		wantCategory   model.Category
		wantDecision   model.DecisionTag
		wantConfidence float64
	}{
		{
			name:           "agreement uses weighted confidence",
			rule:           model.ScoreResult{Category: model.CategoryContract, Confidence: 0.5},
			ml:             model.Prediction{Category: model.CategoryContract, Confidence: 0.9},
			wantCategory:   model.CategoryContract,
			wantDecision:   model.DecisionAgreement,
			wantConfidence: 0.74,
		},
		{
			name:           "agreement caps at one",
			rule:           model.ScoreResult{Category: model.CategoryInvoice, Confidence: 1.0},
			ml:             model.Prediction{Category: model.CategoryInvoice, Confidence: 1.0},
			wantCategory:   model.CategoryInvoice,
			wantDecision:   model.DecisionAgreement,
			wantConfidence: 1.0,
		},
		{
			name:           "rule dominance overrides weak ml",
			rule:           model.ScoreResult{Category: model.CategoryInvoice, Confidence: 0.85},
			ml:             model.Prediction{Category: model.CategoryResume, Confidence: 0.2},
			wantCategory:   model.CategoryInvoice,
			wantDecision:   model.DecisionRuleOverride,
			wantConfidence: 0.85,
		},
		{
			name:           "ml dominance overrides weak rule",
			rule:           model.ScoreResult{Category: model.CategoryInvoice, Confidence: 0.3},
			ml:             model.Prediction{Category: model.CategoryResume, Confidence: 0.8},
			wantCategory:   model.CategoryResume,
			wantDecision:   model.DecisionMLOverride,
			wantConfidence: 0.8,
		},
		{
			name:           "no dominance when both confident",
			rule:           model.ScoreResult{Category: model.CategoryContract, Confidence: 0.75},
			ml:             model.Prediction{Category: model.CategoryResume, Confidence: 0.72},
			wantCategory:   model.CategoryContract,
			wantDecision:   model.DecisionDisagreementRuleWins,
			wantConfidence: 0.55,
		},
		{
			name:           "disagreement ml wins with penalty",
			rule:           model.ScoreResult{Category: model.CategoryInvoice, Confidence: 0.55},
			ml:             model.Prediction{Category: model.CategoryBankStatement, Confidence: 0.6},
			wantCategory:   model.CategoryBankStatement,
			wantDecision:   model.DecisionDisagreementMLWins,
			wantConfidence: 0.4,
		},
		{
			name:           "disagreement floor holds",
			rule:           model.ScoreResult{Category: model.CategoryResume, Confidence: 0.4},
			ml:             model.Prediction{Category: model.CategoryContract, Confidence: 0.45},
			wantCategory:   model.CategoryContract,
			wantDecision:   model.DecisionDisagreementMLWins,
			wantConfidence: 0.3,
		},
		{
			name:           "equal confidence favors rule",
			rule:           model.ScoreResult{Category: model.CategoryResume, Confidence: 0.6},
			ml:             model.Prediction{Category: model.CategoryContract, Confidence: 0.6},
			wantCategory:   model.CategoryResume,
			wantDecision:   model.DecisionDisagreementRuleWins,
			wantConfidence: 0.4,
		},
		{
			name:           "degraded ml prediction flows through rule override",
			rule:           model.ScoreResult{Category: model.CategoryInvoice, Confidence: 0.9},
			ml:             model.Prediction{Category: model.CategoryOther, Confidence: 0.0, Err: "inference failed"},
			wantCategory:   model.CategoryInvoice,
			wantDecision:   model.DecisionRuleOverride,
			wantConfidence: 0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reconcile(tt.rule, tt.ml, w)

			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantDecision, result.Decision)
			assert.InDelta(t, tt.wantConfidence, result.Confidence, 1e-9)
			assert.NotEmpty(t, result.Factors)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)

			// Individual results are retained for auditing.
			assert.Equal(t, tt.rule.Category, result.Rule.Category)
			assert.Equal(t, tt.ml.Category, result.ML.Category)
		})
	}
}

func TestReconcile_AgreementImpliesCategoryMatch(t *testing.T) {
	w := DefaultWeights()
	rule := model.ScoreResult{Category: model.CategoryResume, Confidence: 0.6}
	ml := model.Prediction{Category: model.CategoryResume, Confidence: 0.7}

	result := Reconcile(rule, ml, w)

	assert.Equal(t, model.DecisionAgreement, result.Decision)
	assert.Equal(t, result.Category, rule.Category)
	assert.Equal(t, result.Category, ml.Category)
}

func TestReconcile_DisagreementFloor(t *testing.T) {
	w := DefaultWeights()

	// Sweep low-confidence disagreements; the floor must always hold.
	for _, ruleConf := range []float64{0.0, 0.1, 0.2, 0.3, 0.4} {
		for _, mlConf := range []float64{0.0, 0.1, 0.2, 0.3, 0.4} {
			rule := model.ScoreResult{Category: model.CategoryInvoice, Confidence: ruleConf}
			ml := model.Prediction{Category: model.CategoryResume, Confidence: mlConf}
			result := Reconcile(rule, ml, w)
			if result.Decision == model.DecisionDisagreementMLWins || result.Decision == model.DecisionDisagreementRuleWins {
				assert.GreaterOrEqual(t, result.Confidence, 0.3,
					"rule=%.1f ml=%.1f", ruleConf, mlConf)
			}
		}
	}
}
