package triage

import (
	"regexp"
	"strings"
)

// Level classifies a query before any AI call is made
type Level string

const (
	// LevelNormal queries proceed to the AI tool pipeline
	LevelNormal Level = "normal"
	// LevelEmergency queries get an immediate urgent-care response and
	// never reach the AI
	LevelEmergency Level = "emergency"
)

// Result contains the screening outcome
type Result struct {
	Level   Level  `json:"level"`
	Matched string `json:"matched,omitempty"`
}

// Screener performs rule-based screening of tool queries so that queries
// describing an active emergency are answered with urgent-care guidance
// instead of a best-effort AI lookup.
type Screener struct {
	emergencyPatterns []*regexp.Regexp
	spaceNormalizer   *regexp.Regexp
}

// NewScreener creates a new query screener
func NewScreener() *Screener {
	return &Screener{
		spaceNormalizer: regexp.MustCompile(`\s+`),
		emergencyPatterns: compilePatterns([]string{
			`\b(heavy |severe )?bleeding\b`,
			`\bsevere (pain|cramping|headache)\b`,
			`\b(overdose|overdosed|poisoning|poisoned)\b`,
			`\bswallowed\b`,
			`\bcan'?t breathe\b`,
			`\b(unconscious|fainted|seizure)\b`,
			`\bwater broke\b`,
			`\bno (fetal )?movement\b`,
			`\bbaby (isn'?t|not|stopped) moving\b`,
		}),
	}
}

// Screen classifies a query. Matching is case-insensitive on normalized text.
func (s *Screener) Screen(query string) Result {
	normalized := s.normalize(query)
	if normalized == "" {
		return Result{Level: LevelNormal}
	}

	for _, pattern := range s.emergencyPatterns {
		if match := pattern.FindString(normalized); match != "" {
			return Result{Level: LevelEmergency, Matched: match}
		}
	}

	return Result{Level: LevelNormal}
}

func (s *Screener) normalize(query string) string {
	text := strings.ToLower(strings.TrimSpace(query))
	text = s.spaceNormalizer.ReplaceAllString(text, " ")
	return strings.TrimRight(text, "!?.,;:")
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
