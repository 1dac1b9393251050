// internal/matching/annotator_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		required SkillSet
		held     SkillSet
		expected []HighlightSpan
	}{
		{
			name:     "required skill is a skill_match",
			text:     "Strong Python background",
			required: NewSkillSet("Python"),
			held:     NewSkillSet(),
			expected: []HighlightSpan{
				{Start: 7, End: 13, Text: "Python", Skill: "Python", Kind: SpanSkillMatch},
			},
		},
		{
			name:     "held but not required is a skill_found",
			text:     "Experience with Docker",
			required: NewSkillSet(),
			held:     NewSkillSet("docker"),
			expected: []HighlightSpan{
				{Start: 16, End: 22, Text: "Docker", Skill: "docker", Kind: SpanSkillFound},
			},
		},
		{
			name:     "case-insensitive matching",
			text:     "worked with PYTHON daily",
			required: NewSkillSet("python"),
			held:     NewSkillSet(),
			expected: []HighlightSpan{
				{Start: 12, End: 18, Text: "PYTHON", Skill: "python", Kind: SpanSkillMatch},
			},
		},
		{
			name:     "word boundary blocks substring hits",
			text:     "pythonic style everywhere",
			required: NewSkillSet("python"),
			held:     NewSkillSet(),
			expected: nil,
		},
		{
			name:     "single letter skills are ignored",
			text:     "Knows C very well",
			required: NewSkillSet("C"),
			held:     NewSkillSet(),
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			required: NewSkillSet("python"),
			held:     NewSkillSet("python"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Annotate(tt.text, tt.required, tt.held)
			if tt.expected == nil {
				assert.Empty(t, spans)
				return
			}
			assert.Equal(t, tt.expected, spans)
		})
	}
}

func TestAnnotate_OverlapPrefersLongerSpan(t *testing.T) {
	// "JavaScript" contains "Java" at the same start offset; the longer
	// span wins and the shorter one is dropped entirely.
	spans := Annotate("Senior JavaScript developer",
		NewSkillSet("Java"),
		NewSkillSet("JavaScript"),
	)

	require.Len(t, spans, 1)
	assert.Equal(t, "JavaScript", spans[0].Text)
	assert.Equal(t, SpanSkillFound, spans[0].Kind)
}

func TestAnnotate_RequiredWinsTieAtEqualLength(t *testing.T) {
	// Same skill required and held: one candidate span per role, equal
	// length, so skill_match wins the tie.
	spans := Annotate("Python expert",
		NewSkillSet("Python"),
		NewSkillSet("python"),
	)

	require.Len(t, spans, 1)
	assert.Equal(t, SpanSkillMatch, spans[0].Kind)
}

func TestAnnotate_RepeatedMentionsAllReported(t *testing.T) {
	spans := Annotate("python scripts, python tooling and more python",
		NewSkillSet("python"),
		NewSkillSet(),
	)

	require.Len(t, spans, 3)
	for i := 1; i < len(spans); i++ {
		assert.Greater(t, spans[i].Start, spans[i-1].End-1)
	}
}

func TestAnnotate_OutputSortedAndDisjoint(t *testing.T) {
	text := "Python and SQL with Docker, Kubernetes and more Python"
	spans := Annotate(text,
		NewSkillSet("Python", "SQL"),
		NewSkillSet("docker", "kubernetes"),
	)

	require.NotEmpty(t, spans)
	for i, span := range spans {
		assert.Equal(t, text[span.Start:span.End], span.Text)
		if i > 0 {
			assert.GreaterOrEqual(t, span.Start, spans[i-1].End)
		}
	}
}

func TestAnnotate_MultiWordSkill(t *testing.T) {
	spans := Annotate("Background in machine learning research",
		NewSkillSet("Machine Learning"),
		NewSkillSet(),
	)

	require.Len(t, spans, 1)
	assert.Equal(t, "machine learning", spans[0].Text)
	assert.Equal(t, "Machine Learning", spans[0].Skill)
}
