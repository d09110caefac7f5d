// Package ml implements the trainable statistical document classifier:
// TF-IDF feature extraction over a bounded vocabulary feeding a random
// forest.
package ml

import (
	"math"
	"sort"
	"strings"

	"github.com/docuflow/docuflow/internal/normalize"
)

const (
	// maxFeatures bounds the vocabulary size.
	maxFeatures = 5000
	// minDocFreq drops terms appearing in fewer documents than this.
	minDocFreq = 2
)

// stopWords are excluded from the vocabulary. Subset of the common english
// list, covering the function words that dominate document text.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "all": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {}, "can": {}, "did": {},
	"do": {}, "does": {}, "doing": {}, "down": {}, "during": {}, "each": {},
	"few": {}, "for": {}, "from": {}, "further": {}, "had": {}, "has": {},
	"have": {}, "having": {}, "he": {}, "her": {}, "here": {}, "hers": {},
	"him": {}, "his": {}, "how": {}, "i": {}, "if": {}, "in": {}, "into": {},
	"is": {}, "it": {}, "its": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "no": {}, "nor": {}, "not": {}, "now": {}, "of": {},
	"off": {}, "on": {}, "once": {}, "only": {}, "or": {}, "other": {},
	"our": {}, "out": {}, "over": {}, "own": {}, "same": {}, "she": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "why": {}, "will": {}, "with": {},
	"you": {}, "your": {},
}

// Vectorizer converts text to TF-IDF vectors over a vocabulary learned from
// a training corpus. All fields are exported for gob snapshot persistence.
type Vectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
}

// terms tokenizes text into stop-word-filtered unigrams plus bigrams of
// adjacent kept tokens. Text is normalized first, so tokenization is
// deterministic for a given input.
func terms(text string) []string {
	tokens := strings.Fields(normalize.Clean(text))

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}

	out := make([]string, 0, len(kept)*2)
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}

// Fit learns the vocabulary and inverse document frequencies from docs.
// Terms in fewer than 2 documents are dropped; if more than 5000 terms
// survive, the most frequent 5000 are kept (ties broken alphabetically for
// stable vocabularies across runs).
func (v *Vectorizer) Fit(docs []string) {
	docFreq := make(map[string]int)
	totalFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range terms(doc) {
			totalFreq[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	candidates := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= minDocFreq {
			candidates = append(candidates, term)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if totalFreq[candidates[i]] != totalFreq[candidates[j]] {
			return totalFreq[candidates[i]] > totalFreq[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > maxFeatures {
		candidates = candidates[:maxFeatures]
	}
	sort.Strings(candidates)

	v.Vocabulary = make(map[string]int, len(candidates))
	v.IDF = make([]float64, len(candidates))
	n := float64(len(docs))
	for i, term := range candidates {
		v.Vocabulary[term] = i
		// Smoothed IDF so unseen terms never divide by zero.
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform maps text to an L2-normalized TF-IDF vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, term := range terms(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// FitTransform fits the vocabulary on docs and returns their vectors.
func (v *Vectorizer) FitTransform(docs []string) [][]float64 {
	v.Fit(docs)
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors
}

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// TopTerms returns the highest-weighted non-zero terms of the vector for
// text, capped at limit.
func (v *Vectorizer) TopTerms(text string, limit int) []string {
	vec := v.Transform(text)

	type weighted struct {
		term   string
		weight float64
	}
	nonZero := make([]weighted, 0, limit)
	for term, idx := range v.Vocabulary {
		if vec[idx] > 0 {
			nonZero = append(nonZero, weighted{term: term, weight: vec[idx]})
		}
	}
	sort.Slice(nonZero, func(i, j int) bool {
		if nonZero[i].weight != nonZero[j].weight {
			return nonZero[i].weight > nonZero[j].weight
		}
		return nonZero[i].term < nonZero[j].term
	})

	if len(nonZero) > limit {
		nonZero = nonZero[:limit]
	}
	top := make([]string, len(nonZero))
	for i, w := range nonZero {
		top[i] = w.term
	}
	return top
}
