// internal/matching/skills.go
package matching

import "strings"

// NormalizeSkill folds a skill name to its comparison form: lowercased,
// trimmed, internal whitespace collapsed to single spaces.
func NormalizeSkill(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// SkillSet is a set of skills keyed by normalized form. The first original
// casing seen for a key is retained for display, and insertion order is
// preserved so outputs are deterministic.
type SkillSet struct {
	keys    []string
	display map[string]string
}

// NewSkillSet builds a SkillSet from raw skill strings. Empty strings and
// duplicates (after normalization) are dropped.
func NewSkillSet(skills ...string) SkillSet {
	set := SkillSet{display: make(map[string]string, len(skills))}
	for _, raw := range skills {
		key := NormalizeSkill(raw)
		if key == "" {
			continue
		}
		if _, seen := set.display[key]; seen {
			continue
		}
		set.keys = append(set.keys, key)
		set.display[key] = strings.TrimSpace(raw)
	}
	return set
}

// ParseSkillsCSV splits a comma-separated skill list into a SkillSet,
// trimming entries and dropping empties.
func ParseSkillsCSV(csv string) SkillSet {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return NewSkillSet(skills...)
}

// Union returns a new set containing the skills of s followed by the skills
// of other that s does not already contain.
func (s SkillSet) Union(other SkillSet) SkillSet {
	merged := NewSkillSet(s.Skills()...)
	for _, key := range other.keys {
		if _, seen := merged.display[key]; seen {
			continue
		}
		merged.keys = append(merged.keys, key)
		merged.display[key] = other.display[key]
	}
	return merged
}

// Contains reports membership by normalized form.
func (s SkillSet) Contains(skill string) bool {
	_, ok := s.display[NormalizeSkill(skill)]
	return ok
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int {
	return len(s.keys)
}

// Skills returns the display-cased skills in insertion order.
func (s SkillSet) Skills() []string {
	out := make([]string, len(s.keys))
	for i, key := range s.keys {
		out[i] = s.display[key]
	}
	return out
}

// Display returns the retained display casing for a skill, falling back to
// the input when the skill is not in the set.
func (s SkillSet) Display(skill string) string {
	if d, ok := s.display[NormalizeSkill(skill)]; ok {
		return d
	}
	return skill
}
