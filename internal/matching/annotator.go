// internal/matching/annotator.go
package matching

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

// SpanKind classifies a highlight span.
type SpanKind string

const (
	// SpanSkillMatch marks an occurrence of a required skill.
	SpanSkillMatch SpanKind = "skill_match"
	// SpanSkillFound marks a held skill that is not required (informational).
	SpanSkillFound SpanKind = "skill_found"
)

// HighlightSpan locates one skill mention inside the scanned text. Spans from
// a single Annotate call never overlap and arrive sorted by Start.
type HighlightSpan struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Text  string   `json:"text"`
	Skill string   `json:"skill"`
	Kind  SpanKind `json:"type"`
}

// Annotate scans text for every occurrence of every skill in held and
// required, case-insensitively and bounded by word breaks. Overlapping
// candidates are resolved by preferring the longer span, then skill_match
// over skill_found, then the earlier start; the loser is dropped entirely.
func Annotate(text string, required, held SkillSet) []HighlightSpan {
	if text == "" {
		return nil
	}

	var candidates []HighlightSpan
	for _, skill := range held.Union(required).Skills() {
		// Single stray letters produce noise matches, skip them.
		if utf8.RuneCountInString(NormalizeSkill(skill)) < 2 {
			continue
		}
		kind := SpanSkillFound
		if required.Contains(skill) {
			kind = SpanSkillMatch
			skill = required.Display(skill)
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(NormalizeSkill(skill)) + `\b`)
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, HighlightSpan{
				Start: loc[0],
				End:   loc[1],
				Text:  text[loc[0]:loc[1]],
				Skill: skill,
				Kind:  kind,
			})
		}
	}

	spans := resolveOverlaps(candidates)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// resolveOverlaps greedily keeps candidates in preference order (longest
// first, then skill_match, then earliest start) and discards any span that
// overlaps an already kept one.
func resolveOverlaps(candidates []HighlightSpan) []HighlightSpan {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if la, lb := a.End-a.Start, b.End-b.Start; la != lb {
			return la > lb
		}
		if a.Kind != b.Kind {
			return a.Kind == SpanSkillMatch
		}
		return a.Start < b.Start
	})

	kept := make([]HighlightSpan, 0, len(candidates))
	for _, c := range candidates {
		overlaps := false
		for _, k := range kept {
			if c.Start < k.End && k.Start < c.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, c)
		}
	}
	return kept
}
