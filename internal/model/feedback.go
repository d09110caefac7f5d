package model

import "time"

// Feedback is a user-supplied correction appended to the feedback log for
// future retraining. Submitting feedback never retrains the live model.
type Feedback struct {
	CreatedAt time.Time
	Label     Category
	Text      string
	ID        int64
}

// TrainingSample pairs a text with its correct label for model training.
type TrainingSample struct {
	Text  string
	Label Category
}

// ClassificationRecord is a persisted classification outcome, kept for
// auditing and dashboard-style history queries.
type ClassificationRecord struct {
	ClassifiedAt time.Time
	ID           string
	Category     Category
	Decision     DecisionTag
	SourcePath   string
	Confidence   float64
}
