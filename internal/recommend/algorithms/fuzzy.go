// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

const (
	// DefaultSuggestions is the maximum number of near-miss titles returned.
	DefaultSuggestions = 5

	// DefaultSuggestCutoff is the minimum SequenceMatcher ratio for a title
	// to be suggested.
	DefaultSuggestCutoff = 0.5
)

// CloseMatcher suggests catalog titles that are character-wise close to a
// query. Titles are compared raw, without normalization, using
// SequenceMatcher ratios over runes.
type CloseMatcher struct {
	BaseAlgorithm

	// Configuration
	limit  int
	cutoff float64

	// Fitted model
	titles []string
	runes  [][]string // titles split into single-rune strings
}

// CloseMatcherConfig contains configuration for the suggester.
type CloseMatcherConfig struct {
	// Limit is the maximum number of suggestions. Default 5.
	Limit int

	// Cutoff is the minimum ratio in (0, 1]. Default 0.5.
	Cutoff float64
}

// NewCloseMatcher creates an unfitted suggester.
func NewCloseMatcher(cfg CloseMatcherConfig) *CloseMatcher {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultSuggestions
	}
	if cfg.Cutoff <= 0 || cfg.Cutoff > 1 {
		cfg.Cutoff = DefaultSuggestCutoff
	}
	return &CloseMatcher{
		BaseAlgorithm: NewBaseAlgorithm("close_matcher"),
		limit:         cfg.Limit,
		cutoff:        cfg.Cutoff,
	}
}

// Fit stores the raw catalog titles.
//
//nolint:gocritic // rangeValCopy: Movie is small
func (c *CloseMatcher) Fit(movies []recommend.Movie) {
	c.acquireFitLock()
	defer c.releaseFitLock()

	c.titles = make([]string, len(movies))
	c.runes = make([][]string, len(movies))
	for i, m := range movies {
		c.titles[i] = m.Title
		c.runes[i] = strings.Split(m.Title, "")
	}
	c.markFitted()
}

type closeMatch struct {
	ratio float64
	title string
}

// Suggest returns up to limit titles whose ratio against query is at least
// cutoff, best first. Equal ratios order by title, descending. The cheap
// upper bounds RealQuickRatio and QuickRatio are checked before the full
// Ratio.
func (c *CloseMatcher) Suggest(query string) []string {
	c.acquireQueryLock()
	defer c.releaseQueryLock()

	if !c.fitted || len(c.titles) == 0 {
		return nil
	}

	m := difflib.NewMatcher(nil, strings.Split(query, ""))
	var matches []closeMatch
	for i, title := range c.runes {
		m.SetSeq1(title)
		if m.RealQuickRatio() < c.cutoff || m.QuickRatio() < c.cutoff {
			continue
		}
		if r := m.Ratio(); r >= c.cutoff {
			matches = append(matches, closeMatch{ratio: r, title: c.titles[i]})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].ratio != matches[j].ratio {
			return matches[i].ratio > matches[j].ratio
		}
		return matches[i].title > matches[j].title
	})
	if len(matches) > c.limit {
		matches = matches[:c.limit]
	}

	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.title
	}
	return out
}
