// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"
	"testing"
	"time"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"year in parentheses", "Toy Story (1995)", "toy story 1995"},
		{"punctuation deleted not replaced", "Se7en: Redux", "se7en redux"},
		{"article suffix", "American President, The (1995)", "american president the 1995"},
		{"hyphen joins words", "Spider-Man (2002)", "spiderman 2002"},
		{"non-ascii letters dropped", "Amélie (2001)", "amlie 2001"},
		{"tabs and newlines dropped", "a\tb\nc", "abc"},
		{"spaces preserved", "  two  spaces ", "  two  spaces "},
		{"empty", "", ""},
		{"only punctuation", "!!!???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.input); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Toy Story (1995)",
		"Léon: The Professional (1994)",
		"WALL·E (2008)",
		"  ",
		"!!!",
		"(500) Days of Summer (2009)",
		"\x00\xff binary",
	}

	for _, in := range inputs {
		once := CleanTitle(in)
		if twice := CleanTitle(once); twice != once {
			t.Errorf("CleanTitle not idempotent for %q: %q then %q", in, once, twice)
		}
		for _, r := range once {
			if !(r == ' ' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				t.Errorf("CleanTitle(%q) contains %q", in, r)
			}
		}
	}
}

func TestNewMovie(t *testing.T) {
	m := NewMovie(1, "Toy Story (1995)", "Animation|Comedy")
	if m.CleanTitle != "toy story 1995" {
		t.Errorf("CleanTitle = %q", m.CleanTitle)
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeRecommendations, "recommendations"},
		{OutcomeSuggestions, "suggestions"},
		{OutcomeNoMovieFound, "no_movie_found"},
		{OutcomeNoRecommendations, "no_recommendations"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
			}
			text, err := tt.outcome.MarshalText()
			if err != nil || string(text) != tt.want {
				t.Errorf("MarshalText() = %q, %v", text, err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid"},
		{name: "negative timeout", mutate: func(c *Config) { c.QueryTimeout = -time.Second }, wantErr: "query_timeout"},
		{name: "zero ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }, wantErr: "cache.ttl"},
		{name: "zero entries", mutate: func(c *Config) { c.Cache.MaxEntries = 0 }, wantErr: "cache.max_entries"},
		{name: "disabled cache ignores sizing", mutate: func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
			c.Cache.MaxEntries = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
