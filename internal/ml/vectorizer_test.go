package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_Fit_MinDocFreq(t *testing.T) {
	v := &Vectorizer{}
	v.Fit([]string{
		"invoice payment total",
		"invoice payment terms",
		"unrelated singleton words",
	})

	// "invoice" and "payment" appear in two documents; the rest in one.
	assert.Contains(t, v.Vocabulary, "invoice")
	assert.Contains(t, v.Vocabulary, "payment")
	assert.Contains(t, v.Vocabulary, "invoice payment")
	assert.NotContains(t, v.Vocabulary, "total")
	assert.NotContains(t, v.Vocabulary, "singleton")
}

func TestVectorizer_Fit_ExcludesStopWords(t *testing.T) {
	v := &Vectorizer{}
	v.Fit([]string{
		"the invoice is due",
		"the invoice is paid",
	})

	assert.NotContains(t, v.Vocabulary, "the")
	assert.NotContains(t, v.Vocabulary, "is")
	assert.Contains(t, v.Vocabulary, "invoice")
	// Bigrams span stop-word gaps after filtering.
	assert.NotContains(t, v.Vocabulary, "the invoice")
}

func TestVectorizer_Transform_L2Normalized(t *testing.T) {
	v := &Vectorizer{}
	v.Fit([]string{
		"invoice payment due",
		"invoice payment balance",
	})

	vec := v.Transform("invoice payment")
	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestVectorizer_Transform_UnknownTermsZeroVector(t *testing.T) {
	v := &Vectorizer{}
	v.Fit([]string{
		"invoice payment",
		"invoice payment",
	})

	vec := v.Transform("completely unrelated content")
	for _, w := range vec {
		assert.Zero(t, w)
	}
}

func TestVectorizer_TopTerms(t *testing.T) {
	v := &Vectorizer{}
	docs := make([]string, 0, 4)
	docs = append(docs,
		"invoice payment balance deposit withdrawal statement account transaction",
		"invoice payment balance deposit withdrawal statement account transaction",
		"invoice total",
		"invoice total",
	)
	v.Fit(docs)

	top := v.TopTerms("invoice payment balance deposit withdrawal statement account transaction", 5)
	require.NotEmpty(t, top)
	assert.LessOrEqual(t, len(top), 5)

	assert.Empty(t, v.TopTerms("", 5))
}

func TestVectorizer_DeterministicAcrossFits(t *testing.T) {
	docs := []string{
		"invoice payment due date",
		"invoice payment terms net",
		"account balance statement period",
		"account balance deposit withdrawal",
	}

	a := &Vectorizer{}
	a.Fit(docs)
	b := &Vectorizer{}
	b.Fit(docs)

	assert.Equal(t, a.Vocabulary, b.Vocabulary)
	assert.Equal(t, a.IDF, b.IDF)
}
