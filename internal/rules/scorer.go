// Package rules implements the deterministic rule-based document scorer.
package rules

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/docuflow/docuflow/internal/model"
	"github.com/docuflow/docuflow/internal/normalize"
)

const (
	// keywordWeight and patternWeight split a category's raw score between
	// keyword hits and pattern hits.
	keywordWeight = 0.7
	patternWeight = 0.3

	// minScore is the floor below which the scorer falls back to Other.
	minScore = 0.3

	// fallbackConfidence is reported for the Other fallback regardless of
	// the actual best score. Low-signal text is never trusted.
	fallbackConfidence = 0.5

	// maxEvidence caps the matched-evidence strings per result.
	maxEvidence = 5
)

// compiledRuleSet pairs a RuleSet with its pre-compiled patterns.
type compiledRuleSet struct {
	RuleSet
	compiled []*regexp.Regexp
}

// Scorer scores text against per-category keyword and pattern rule sets.
// The rule table is an immutable snapshot swapped atomically on update, so
// in-flight scoring never observes a partially-updated table.
type Scorer struct {
	sets []compiledRuleSet
	mu   sync.RWMutex
}

// NewScorer creates a scorer from the given rule sets. Every category except
// Other must carry at least one keyword; invalid patterns are rejected.
func NewScorer(sets []RuleSet) (*Scorer, error) {
	compiled, err := compileRuleSets(sets)
	if err != nil {
		return nil, err
	}
	return &Scorer{sets: compiled}, nil
}

// NewDefaultScorer creates a scorer with the built-in rule sets.
func NewDefaultScorer() (*Scorer, error) {
	return NewScorer(DefaultRuleSets())
}

func compileRuleSets(sets []RuleSet) ([]compiledRuleSet, error) {
	compiled := make([]compiledRuleSet, 0, len(sets))

	for _, set := range sets {
		if !set.Category.Valid() {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownCategory, set.Category)
		}
		if set.Category != model.CategoryOther && len(set.Keywords) == 0 {
			return nil, fmt.Errorf("rule set for %s has no keywords", set.Category)
		}
		if set.Weight == 0 {
			set.Weight = 1.0
		}

		regexes := make([]*regexp.Regexp, 0, len(set.Patterns))
		for _, pattern := range set.Patterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("failed to compile pattern %q for %s: %w", pattern, set.Category, err)
			}
			regexes = append(regexes, re)
		}

		compiled = append(compiled, compiledRuleSet{RuleSet: set, compiled: regexes})
	}

	return compiled, nil
}

// UpdateRules replaces the rule table with a new snapshot.
func (s *Scorer) UpdateRules(sets []RuleSet) error {
	compiled, err := compileRuleSets(sets)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sets = compiled
	s.mu.Unlock()
	return nil
}

// RuleCount returns the number of loaded rule sets.
func (s *Scorer) RuleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sets)
}

// Score evaluates text against every rule set and returns the best-scoring
// category. A best score below 0.3 falls back to Other at a fixed 0.5
// confidence. Never fails; blank input yields Other at 0.0.
func (s *Scorer) Score(text string) model.ScoreResult {
	if normalize.IsBlank(text) {
		return model.ScoreResult{
			Category:   model.CategoryOther,
			Confidence: 0.0,
			Scores:     map[model.Category]float64{},
			Reasoning:  "No text content found",
		}
	}

	s.mu.RLock()
	sets := s.sets
	s.mu.RUnlock()

	textLower := strings.ToLower(text)
	scores := make(map[model.Category]float64, len(sets))

	var best *compiledRuleSet
	bestScore := 0.0
	for i := range sets {
		score := sets[i].score(textLower, text)
		scores[sets[i].Category] = score
		// Strict comparison keeps first-defined category on ties.
		if best == nil || score > bestScore {
			best = &sets[i]
			bestScore = score
		}
	}

	if best == nil || bestScore < minScore {
		return model.ScoreResult{
			Category:   model.CategoryOther,
			Confidence: fallbackConfidence,
			Scores:     scores,
		}
	}

	confidence := bestScore
	if confidence > 1.0 {
		confidence = 1.0
	}

	return model.ScoreResult{
		Category:   best.Category,
		Confidence: confidence,
		Scores:     scores,
		Evidence:   best.evidence(textLower, text),
	}
}

// score computes (keywordHits/keywords*0.7 + patternHits/patterns*0.3) * weight.
func (c *compiledRuleSet) score(textLower, original string) float64 {
	var keywordScore, patternScore float64

	if len(c.Keywords) > 0 {
		found := 0
		for _, keyword := range c.Keywords {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				found++
			}
		}
		keywordScore = float64(found) / float64(len(c.Keywords)) * keywordWeight
	}

	if len(c.compiled) > 0 {
		found := 0
		for _, re := range c.compiled {
			if re.MatchString(original) {
				found++
			}
		}
		patternScore = float64(found) / float64(len(c.compiled)) * patternWeight
	}

	return (keywordScore + patternScore) * c.Weight
}

// evidence collects up to 5 matched keywords and pattern captures for the
// selected category, in rule-definition order.
func (c *compiledRuleSet) evidence(textLower, original string) []string {
	matches := make([]string, 0, maxEvidence)

	for _, keyword := range c.Keywords {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			matches = append(matches, fmt.Sprintf("Keyword: %q", keyword))
		}
	}
	for _, re := range c.compiled {
		if m := re.FindString(original); m != "" {
			matches = append(matches, fmt.Sprintf("Pattern: %q", m))
		}
	}

	if len(matches) > maxEvidence {
		matches = matches[:maxEvidence]
	}
	return matches
}
