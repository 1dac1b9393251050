// internal/extraction/skills.go
package extraction

import (
	"regexp"
	"sort"
	"strings"

	"ats-match-workers/internal/models"
)

// VocabularyExtractor detects skills by scanning text for every entry of a
// fixed vocabulary on word boundaries. It implements SkillExtractor.
type VocabularyExtractor struct {
	skills   []string
	patterns []*regexp.Regexp
}

// NewVocabularyExtractor compiles the scan patterns once up front. Entries
// that do not survive compilation (or are blank) are dropped.
func NewVocabularyExtractor(vocabulary []string) *VocabularyExtractor {
	e := &VocabularyExtractor{
		skills:   make([]string, 0, len(vocabulary)),
		patterns: make([]*regexp.Regexp, 0, len(vocabulary)),
	}
	for _, skill := range vocabulary {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(trimmed)) + `\b`)
		if err != nil {
			continue
		}
		e.skills = append(e.skills, trimmed)
		e.patterns = append(e.patterns, re)
	}
	return e
}

// NewDefaultExtractor returns an extractor over the built-in tech skill
// vocabulary, combined with the regex-based experience and education
// detectors. This is the collaborator the ad-hoc score worker uses unless
// something richer is wired in.
func NewDefaultExtractor() Extractor {
	return &defaultExtractor{vocab: NewVocabularyExtractor(DefaultVocabulary)}
}

// ExtractSkills returns the vocabulary entries found in text, sorted
// case-insensitively for stable output. Empty text yields nil.
func (e *VocabularyExtractor) ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	var found []string
	for i, re := range e.patterns {
		if re.MatchString(text) {
			found = append(found, e.skills[i])
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i]) < strings.ToLower(found[j])
	})
	return found
}

type defaultExtractor struct {
	vocab *VocabularyExtractor
}

func (d *defaultExtractor) ExtractSkills(text string) []string {
	return d.vocab.ExtractSkills(text)
}

func (d *defaultExtractor) ExtractExperienceYears(text string) float64 {
	return ExtractExperienceYears(text)
}

func (d *defaultExtractor) ExtractEducationLevel(text string) models.EducationLevel {
	return ExtractEducationLevel(text)
}
