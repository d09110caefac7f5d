package engine

import (
	"context"
	"testing"

	"github.com/docuflow/docuflow/internal/ml"
	"github.com/docuflow/docuflow/internal/model"
	"github.com/docuflow/docuflow/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRealEngine(t *testing.T) *Engine {
	t.Helper()
	scorer, err := rules.NewDefaultScorer()
	require.NoError(t, err)
	classifier := ml.NewClassifier(nil)
	require.NoError(t, classifier.Warmup(context.Background()))
	return New(scorer, classifier)
}

func TestEngine_Classify_EndToEnd(t *testing.T) {
	e := newRealEngine(t)
	ctx := context.Background()

	knownDecisions := map[model.DecisionTag]struct{}{
		model.DecisionAgreement:            {},
		model.DecisionMLOverride:           {},
		model.DecisionRuleOverride:         {},
		model.DecisionDisagreementMLWins:   {},
		model.DecisionDisagreementRuleWins: {},
		model.DecisionFailedValidation:     {},
	}

	inputs := []string{
		"Invoice number INV-2024-001 Total amount due $1,250.00 Payment terms 30 days Due date 2024-02-15",
		"John Smith Software Engineer work experience education skills references linkedin",
		"This agreement is entered into by and between the parties, and governed by the laws of Delaware",
		"Bank statement Account number 123456789 Opening balance $5,000.00 Closing balance $4,500.00",
		"the quick brown fox jumps over the lazy dog",
		"",
	}

	for _, text := range inputs {
		result := e.Classify(ctx, text)

		// Category closure and confidence bounds hold for every input.
		assert.True(t, result.Category.Valid(), "input %q", text)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "input %q", text)
		assert.LessOrEqual(t, result.Confidence, 1.0, "input %q", text)
		assert.Contains(t, knownDecisions, result.Decision, "input %q", text)
		assert.NotEmpty(t, result.Factors, "input %q", text)
	}
}

func TestEngine_Classify_Idempotent(t *testing.T) {
	e := newRealEngine(t)
	ctx := context.Background()

	text := "Invoice #12345 Billing address 123 Main St Amount due $567.89 Due date 03/15/2024"
	first := e.Classify(ctx, text)
	second := e.Classify(ctx, text)

	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Decision, second.Decision)
	assert.Equal(t, first.Factors, second.Factors)
}

func TestEngine_Classify_InvoiceAgainstTrainedModel(t *testing.T) {
	e := newRealEngine(t)

	result := e.Classify(context.Background(),
		"Invoice number INV-2024-001 Total amount due $1,250.00 Payment terms 30 days Due date 2024-02-15")

	assert.Equal(t, model.CategoryInvoice, result.Category)
	assert.GreaterOrEqual(t, result.Confidence, 0.3)
}
