// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
)

// Sentinel errors returned by the engine.
var (
	// ErrNotReady indicates a component was queried before it was fitted.
	ErrNotReady = errors.New("recommend: component not fitted")

	// ErrMissingComponent indicates the engine was built without one of its
	// four collaborators.
	ErrMissingComponent = errors.New("recommend: missing engine component")
)

// Movie is one catalog entry.
type Movie struct {
	// ID is the catalog movie identifier (MovieLens movieId).
	ID int `json:"movie_id"`

	// Title is the display title, usually with the release year in
	// parentheses, e.g. "Toy Story (1995)".
	Title string `json:"title"`

	// Genres is the pipe-delimited genre list, kept opaque.
	Genres string `json:"genres"`

	// CleanTitle is CleanTitle(Title), computed once at load time.
	CleanTitle string `json:"-"`
}

// NewMovie builds a Movie with its normalized title filled in.
func NewMovie(id int, title, genres string) Movie {
	return Movie{ID: id, Title: title, Genres: genres, CleanTitle: CleanTitle(title)}
}

// Rating is one user's rating of one movie.
type Rating struct {
	UserID  int     `json:"user_id"`
	MovieID int     `json:"movie_id"`
	Rating  float64 `json:"rating"`

	// Timestamp is carried through from the source and never read by the
	// scoring logic.
	Timestamp int64 `json:"timestamp"`
}

// SearchHit is a catalog entry scored against a query.
type SearchHit struct {
	Movie Movie `json:"movie"`

	// Score is the cosine similarity in [0, 1].
	Score float64 `json:"score"`
}

// Recommendation is one row of a co-rating score table.
type Recommendation struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
	Genres  string `json:"genres"`

	// Score is Similar / General.
	Score float64 `json:"score"`

	// Similar is the share of the affinity set that also rated this movie
	// above the high-rating threshold.
	Similar float64 `json:"similar"`

	// General is the share of the candidate population that rated this movie
	// above the high-rating threshold.
	General float64 `json:"general"`
}

// Outcome is the terminal state of a query.
type Outcome int

const (
	// OutcomeRecommendations means a candidate produced a score table.
	OutcomeRecommendations Outcome = iota
	// OutcomeSuggestions means no title matched lexically but near-miss
	// titles were found.
	OutcomeSuggestions
	// OutcomeNoMovieFound means nothing matched and nothing came close.
	OutcomeNoMovieFound
	// OutcomeNoRecommendations means titles matched but none had enough
	// ratings data.
	OutcomeNoRecommendations
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRecommendations:
		return "recommendations"
	case OutcomeSuggestions:
		return "suggestions"
	case OutcomeNoMovieFound:
		return "no_movie_found"
	case OutcomeNoRecommendations:
		return "no_recommendations"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so outcomes serialize by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// QueryResult is the answer to one free-text query.
type QueryResult struct {
	// Query is the raw text as received.
	Query string `json:"query"`

	// CleanQuery is CleanTitle(Query).
	CleanQuery string `json:"clean_query"`

	Outcome Outcome `json:"outcome"`

	// Matches are the lexical search hits. Empty on the no-match path.
	Matches []SearchHit `json:"matches,omitempty"`

	// SourceMovieID is the candidate whose score table was returned.
	SourceMovieID int `json:"source_movie_id,omitempty"`

	Recommendations []Recommendation `json:"recommendations,omitempty"`

	// Suggestions are near-miss raw titles for the no-match path.
	Suggestions []string `json:"suggestions,omitempty"`

	// Attempts is how many candidates were tried before stopping.
	Attempts int `json:"attempts"`
}

// TitleIndex finds catalog entries lexically similar to a query.
type TitleIndex interface {
	// Search returns exactly min(k, catalog size) hits, best first.
	Search(query string, k int) []SearchHit

	// VocabularySize reports the number of fitted terms.
	VocabularySize() int
}

// PopularityRanker orders movie IDs by how many distinct users rated them.
type PopularityRanker interface {
	Rank(ids []int) []int
	Count(id int) int
}

// SimilarFinder computes a co-rating score table for a movie. A nil slice
// with a nil error means there was not enough data.
type SimilarFinder interface {
	FindSimilar(ctx context.Context, movieID int) ([]Recommendation, error)
}

// Suggester returns near-miss catalog titles for a raw query.
type Suggester interface {
	Suggest(query string) []string
}

// Components bundles the fitted collaborators an Engine is built from.
type Components struct {
	Index     TitleIndex
	Ranker    PopularityRanker
	Finder    SimilarFinder
	Suggester Suggester

	// CatalogSize and RatingCount are reported on the health endpoint.
	CatalogSize int
	RatingCount int
}
