// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"math"
	"strings"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// TFIDFIndex is a lexical index over normalized catalog titles.
//
// Each title is split on spaces into word tokens, and every unigram plus
// every contiguous n-gram up to maxNGram becomes a term. Term weights are
//
//	w(t, d) = tf(t, d) * (ln((1 + N) / (1 + df(t))) + 1)
//
// and every document vector is scaled to unit L2 norm, so the dot product
// of two vectors is their cosine similarity.
type TFIDFIndex struct {
	BaseAlgorithm

	// Configuration
	maxNGram int

	// Fitted model
	movies   []recommend.Movie
	vocab    map[string]int // term -> dimension, first-seen order
	idf      []float64      // dimension -> idf
	postings [][]posting    // dimension -> documents containing it
}

// posting is one document's weight for a term.
type posting struct {
	doc    int
	weight float64
}

type termFreq struct {
	dim int
	tf  int
}

type termWeight struct {
	dim    int
	weight float64
}

// TFIDFConfig contains configuration for the title index.
type TFIDFConfig struct {
	// MaxNGram is the longest word n-gram indexed. Default 2 (unigrams and
	// bigrams).
	MaxNGram int
}

// NewTFIDFIndex creates an unfitted index.
func NewTFIDFIndex(cfg TFIDFConfig) *TFIDFIndex {
	if cfg.MaxNGram < 1 {
		cfg.MaxNGram = 2
	}
	return &TFIDFIndex{
		BaseAlgorithm: NewBaseAlgorithm("tfidf"),
		maxNGram:      cfg.MaxNGram,
	}
}

// Fit builds the vocabulary, IDF table and document vectors for movies.
// The catalog order is kept and breaks score ties in Search.
//
//nolint:gocritic // rangeValCopy: Movie is small
func (x *TFIDFIndex) Fit(ctx context.Context, movies []recommend.Movie) error {
	x.acquireFitLock()
	defer x.releaseFitLock()

	x.movies = make([]recommend.Movie, len(movies))
	copy(x.movies, movies)
	x.vocab = make(map[string]int)
	x.idf = nil
	x.postings = nil

	docs := make([][]termFreq, len(movies))
	var df []int

	for i, m := range x.movies {
		if i%1024 == 0 && ContextCancelled(ctx) {
			return ctx.Err()
		}

		clean := m.CleanTitle
		if clean == "" && m.Title != "" {
			clean = recommend.CleanTitle(m.Title)
			x.movies[i].CleanTitle = clean
		}

		docs[i] = x.countTerms(clean, true, &df)
	}

	n := float64(len(x.movies))
	x.idf = make([]float64, len(df))
	for dim, d := range df {
		x.idf[dim] = math.Log((1+n)/(1+float64(d))) + 1
	}

	x.postings = make([][]posting, len(df))
	for doc, tfs := range docs {
		for _, w := range x.weigh(tfs) {
			x.postings[w.dim] = append(x.postings[w.dim], posting{doc: doc, weight: w.weight})
		}
	}

	x.markFitted()
	return nil
}

// Search returns the min(k, N) catalog entries most similar to query, best
// first. Equal scores keep catalog order, so a query sharing no terms with
// the catalog yields the first k entries with score 0. Query terms missing
// from the vocabulary are ignored.
func (x *TFIDFIndex) Search(query string, k int) []recommend.SearchHit {
	x.acquireQueryLock()
	defer x.releaseQueryLock()

	if !x.fitted || k <= 0 || len(x.movies) == 0 {
		return nil
	}
	if k > len(x.movies) {
		k = len(x.movies)
	}

	scores := make([]float64, len(x.movies))
	qvec := x.weigh(x.countTerms(recommend.CleanTitle(query), false, nil))
	for _, q := range qvec {
		for _, p := range x.postings[q.dim] {
			scores[p.doc] += q.weight * p.weight
		}
	}

	top := topKStable(scores, k)
	hits := make([]recommend.SearchHit, len(top))
	for i, doc := range top {
		hits[i] = recommend.SearchHit{Movie: x.movies[doc], Score: scores[doc]}
	}
	return hits
}

// VocabularySize reports the number of indexed terms.
func (x *TFIDFIndex) VocabularySize() int {
	x.acquireQueryLock()
	defer x.releaseQueryLock()
	return len(x.vocab)
}

// countTerms returns per-term frequencies for clean text in first-seen
// order. When grow is set, unseen terms are added to the vocabulary and df
// is updated; otherwise they are dropped. Caller must hold the fit lock
// when grow is set and the query lock otherwise.
func (x *TFIDFIndex) countTerms(clean string, grow bool, df *[]int) []termFreq {
	var tfs []termFreq
	pos := make(map[int]int)
	for _, term := range x.terms(clean) {
		dim, ok := x.vocab[term]
		if !ok {
			if !grow {
				continue
			}
			dim = len(x.vocab)
			x.vocab[term] = dim
			*df = append(*df, 0)
		}
		if p, seen := pos[dim]; seen {
			tfs[p].tf++
			continue
		}
		pos[dim] = len(tfs)
		tfs = append(tfs, termFreq{dim: dim, tf: 1})
		if grow {
			(*df)[dim]++
		}
	}
	return tfs
}

// weigh turns term frequencies into a unit-length TF-IDF vector. An empty
// or all-zero input yields nil.
func (x *TFIDFIndex) weigh(tfs []termFreq) []termWeight {
	var norm float64
	out := make([]termWeight, len(tfs))
	for i, f := range tfs {
		w := float64(f.tf) * x.idf[f.dim]
		out[i] = termWeight{dim: f.dim, weight: w}
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for i := range out {
		out[i].weight /= norm
	}
	return out
}

// terms splits clean text into word tokens and returns all n-grams from 1
// to maxNGram, joined by single spaces.
func (x *TFIDFIndex) terms(clean string) []string {
	tokens := strings.Fields(clean)
	if len(tokens) == 0 {
		return nil
	}

	out := make([]string, 0, len(tokens)*x.maxNGram)
	out = append(out, tokens...)
	for n := 2; n <= x.maxNGram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// topKStable returns the indices of the k largest scores in descending
// order. A later index replaces an earlier one only on a strictly greater
// score, so ties resolve to the lower index.
func topKStable(scores []float64, k int) []int {
	top := make([]int, 0, k)
	for i, s := range scores {
		if len(top) == k && s <= scores[top[k-1]] {
			continue
		}

		// insertion point: after every entry with score >= s
		pos := len(top)
		for pos > 0 && scores[top[pos-1]] < s {
			pos--
		}

		if len(top) < k {
			top = append(top, 0)
		}
		copy(top[pos+1:], top[pos:len(top)-1])
		top[pos] = i
	}
	return top
}
