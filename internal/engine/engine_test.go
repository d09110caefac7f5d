package engine

import (
	"context"
	"testing"

	"github.com/docuflow/docuflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Classify_EmptyInput(t *testing.T) {
	scorer := &MockScorer{}
	predictor := &MockPredictor{}
	e := New(scorer, predictor)

	for _, text := range []string{"", "   ", "\t\n"} {
		result := e.Classify(context.Background(), text)

		assert.Equal(t, model.CategoryOther, result.Category)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Equal(t, model.DecisionFailedValidation, result.Decision)
		assert.NotEmpty(t, result.Factors)
	}

	// Blank input short-circuits before either classifier runs.
	assert.Zero(t, scorer.Calls)
	assert.Zero(t, predictor.Calls)
}

func TestEngine_Classify_RawTextForRulesNormalizedForML(t *testing.T) {
	scorer := &MockScorer{
		Result: model.ScoreResult{Category: model.CategoryInvoice, Confidence: 0.6},
	}
	predictor := &MockPredictor{
		Result: model.Prediction{Category: model.CategoryInvoice, Confidence: 0.8},
	}
	e := New(scorer, predictor)

	result := e.Classify(context.Background(), "Invoice #42: Total $99.00")

	assert.Equal(t, model.DecisionAgreement, result.Decision)
	assert.Equal(t, "Invoice #42: Total $99.00", scorer.LastText)
	assert.Equal(t, "invoice 42 total 9900", predictor.LastText)
}

func TestEngine_Classify_CustomWeights(t *testing.T) {
	scorer := &MockScorer{
		Result: model.ScoreResult{Category: model.CategoryContract, Confidence: 0.5},
	}
	predictor := &MockPredictor{
		Result: model.Prediction{Category: model.CategoryContract, Confidence: 0.9},
	}
	w := DefaultWeights()
	w.Rule = 0.5
	w.ML = 0.5
	e := New(scorer, predictor, WithWeights(w))

	result := e.Classify(context.Background(), "contract text")
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
}

func TestEngine_Retrain(t *testing.T) {
	predictor := &MockPredictor{}
	e := New(&MockScorer{}, predictor)

	samples := []model.TrainingSample{
		{Text: "invoice total due", Label: model.CategoryInvoice},
	}
	require.NoError(t, e.Retrain(context.Background(), samples))
	assert.Equal(t, 1, predictor.TrainCalls)
	assert.Equal(t, samples, predictor.Trained)

	err := e.Retrain(context.Background(), []model.TrainingSample{
		{Text: "memo", Label: "Memo"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
	assert.Equal(t, 1, predictor.TrainCalls)
}

func TestEngine_SubmitFeedback(t *testing.T) {
	store := &MockFeedbackStore{}
	e := New(&MockScorer{}, &MockPredictor{}, WithFeedbackStore(store))

	require.NoError(t, e.SubmitFeedback(context.Background(), "this is a lease agreement", model.CategoryContract))
	require.Len(t, store.Entries, 1)
	assert.Equal(t, model.CategoryContract, store.Entries[0].Label)

	// Feedback never retrains the live model.
	assert.Error(t, e.SubmitFeedback(context.Background(), "", model.CategoryContract))
	assert.Error(t, e.SubmitFeedback(context.Background(), "text", "Memo"))
	assert.Len(t, store.Entries, 1)
}

func TestEngine_SubmitFeedback_NoStore(t *testing.T) {
	e := New(&MockScorer{}, &MockPredictor{})
	assert.Error(t, e.SubmitFeedback(context.Background(), "text", model.CategoryInvoice))
}
