// Package engine combines the rule-based scorer and the statistical
// classifier into the hybrid classification pipeline.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docuflow/docuflow/internal/model"
	"github.com/docuflow/docuflow/internal/normalize"
)

// Engine is the primary classification entry point. Both classifiers run
// independently on each input; the ensemble policy reconciles their results.
// Engine itself is stateless between calls; the predictor owns the trained
// model.
type Engine struct {
	scorer    RuleScorer
	predictor Predictor
	feedback  FeedbackStore
	weights   Weights
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the default ensemble weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithFeedbackStore wires a durable feedback log for SubmitFeedback.
func WithFeedbackStore(store FeedbackStore) Option {
	return func(e *Engine) {
		e.feedback = store
	}
}

// New creates a classification engine.
func New(scorer RuleScorer, predictor Predictor, opts ...Option) *Engine {
	e := &Engine{
		scorer:    scorer,
		predictor: predictor,
		weights:   DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify runs the full pipeline: input validation, rule-based scoring on
// the raw text, statistical prediction on the normalized text, and ensemble
// reconciliation. It always returns a complete result and never fails.
func (e *Engine) Classify(ctx context.Context, text string) model.EnsembleResult {
	if normalize.IsBlank(text) {
		return model.EnsembleResult{
			Category:   model.CategoryOther,
			Confidence: 0.0,
			Decision:   model.DecisionFailedValidation,
			Factors:    []string{"No text content provided"},
		}
	}

	ruleResult := e.scorer.Score(text)
	mlResult := e.predictor.Predict(ctx, normalize.Clean(text))

	result := Reconcile(ruleResult, mlResult, e.weights)
	slog.Info("classification complete",
		"category", result.Category,
		"confidence", result.Confidence,
		"decision", result.Decision,
		"rule_category", ruleResult.Category,
		"ml_category", mlResult.Category)
	return result
}

// Warmup trains or loads the statistical model outside the query path.
func (e *Engine) Warmup(ctx context.Context) error {
	return e.predictor.Warmup(ctx)
}

// Retrain replaces the statistical model. Empty samples retrain on the
// bundled corpus.
func (e *Engine) Retrain(ctx context.Context, samples []model.TrainingSample) error {
	for i, sample := range samples {
		if !sample.Label.Valid() {
			return fmt.Errorf("sample %d: %w: %q", i, model.ErrUnknownCategory, sample.Label)
		}
	}
	return e.predictor.Train(ctx, samples)
}

// SubmitFeedback appends a correction to the feedback log. The live model is
// not retrained; retraining is a separate, explicit operation.
func (e *Engine) SubmitFeedback(ctx context.Context, text string, label model.Category) error {
	if !label.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownCategory, label)
	}
	if normalize.IsBlank(text) {
		return fmt.Errorf("feedback text cannot be empty")
	}
	if e.feedback == nil {
		return fmt.Errorf("no feedback store configured")
	}

	if err := e.feedback.AppendFeedback(ctx, label, text); err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}
	slog.Info("feedback recorded", "label", label)
	return nil
}
