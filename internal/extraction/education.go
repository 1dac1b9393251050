// internal/extraction/education.go
package extraction

import (
	"regexp"
	"strings"

	"ats-match-workers/internal/models"
)

// educationLadder is checked from highest to lowest; the first level with a
// matching pattern wins.
var educationLadder = []struct {
	level    models.EducationLevel
	patterns []*regexp.Regexp
}{
	{models.EducationPhD, compileAll(`\bph\.?d\.?\b`, `\bdoctorate\b`, `\bdoctoral\b`)},
	{models.EducationMaster, compileAll(`\bmaster'?s?\b`, `\bm\.?s\.?\b`, `\bm\.?a\.?\b`, `\bmba\b`, `\bm\.?tech\b`)},
	{models.EducationBachelor, compileAll(`\bbachelor'?s?\b`, `\bb\.?s\.?\b`, `\bb\.?a\.?\b`, `\bb\.?tech\b`, `\bb\.?e\.?\b`)},
	{models.EducationAssociate, compileAll(`\bassociate'?s?\b`, `\ba\.?s\.?\b`, `\ba\.?a\.?\b`)},
	{models.EducationHighSchool, compileAll(`\bhigh school\b`, `\bh\.?s\.?\b`, `\bdiploma\b`, `\bged\b`)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// ExtractEducationLevel returns the highest education level mentioned in the
// text, or EducationUnknown when nothing matches.
func ExtractEducationLevel(text string) models.EducationLevel {
	if text == "" {
		return models.EducationUnknown
	}

	lower := strings.ToLower(text)
	for _, rung := range educationLadder {
		for _, re := range rung.patterns {
			if re.MatchString(lower) {
				return rung.level
			}
		}
	}

	return models.EducationUnknown
}
