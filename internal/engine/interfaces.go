package engine

import (
	"context"

	"github.com/docuflow/docuflow/internal/model"
)

// RuleScorer scores text against per-category rule sets. Implementations
// never fail; blank input yields a zero-confidence Other result.
type RuleScorer interface {
	Score(text string) model.ScoreResult
}

// Predictor is the trainable statistical classifier port. Predict never
// returns an error; internal failures surface as degraded predictions.
type Predictor interface {
	Predict(ctx context.Context, text string) model.Prediction
	Train(ctx context.Context, samples []model.TrainingSample) error
	Warmup(ctx context.Context) error
}

// FeedbackStore appends user corrections to the durable feedback log.
// Appends must be serialized or otherwise safe under concurrent writers.
type FeedbackStore interface {
	AppendFeedback(ctx context.Context, label model.Category, text string) error
}
