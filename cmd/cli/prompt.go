// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

const (
	promptText = "Enter a movie title (or 'quit'): "

	headerRecommendations   = "Recommended Movies:"
	headerSuggestions       = "No exact match found. Did you mean one of these?"
	headerNoMovieFound      = "No movie found. Try another title."
	headerNoRecommendations = "No recommendations for this movie"
)

// querier is the slice of *recommend.Engine the prompt uses.
type querier interface {
	Query(ctx context.Context, title string) (*recommend.QueryResult, error)
}

// run answers query once when it is non-empty, otherwise prompts on out and
// reads titles from in until EOF or "quit". Blank lines are ignored.
func run(ctx context.Context, q querier, in io.Reader, out io.Writer, query string) error {
	if query != "" {
		return answer(ctx, q, out, query)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptText)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		title := strings.TrimSpace(scanner.Text())
		switch {
		case title == "":
			continue
		case strings.EqualFold(title, "quit"):
			return nil
		}

		if err := answer(ctx, q, out, title); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func answer(ctx context.Context, q querier, out io.Writer, title string) error {
	result, err := q.Query(ctx, title)
	if err != nil {
		return fmt.Errorf("query %q: %w", title, err)
	}
	return printResult(out, result)
}

// printResult renders one query outcome. Recommendations are shown as an
// aligned title/genres/score table.
func printResult(out io.Writer, result *recommend.QueryResult) error {
	switch result.Outcome {
	case recommend.OutcomeRecommendations:
		fmt.Fprintln(out, headerRecommendations)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TITLE\tGENRES\tSCORE")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(tw, "%s\t%s\t%.3f\n", rec.Title, rec.Genres, rec.Score)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

	case recommend.OutcomeSuggestions:
		fmt.Fprintln(out, headerSuggestions)
		for _, s := range result.Suggestions {
			fmt.Fprintf(out, "  - %s\n", s)
		}

	case recommend.OutcomeNoMovieFound:
		fmt.Fprintln(out, headerNoMovieFound)

	default:
		fmt.Fprintln(out, headerNoRecommendations)
	}

	_, err := fmt.Fprintln(out)
	return err
}
