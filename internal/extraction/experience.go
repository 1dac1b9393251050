// internal/extraction/experience.go
package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns for common phrasings of years of experience, e.g. "5+ years of
// experience", "experience: 3 years", "over 10 years".
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp)(?:\s*:)?\s*(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)(?:\s+(?:in|of|working))`),
	regexp.MustCompile(`(?:over|more than|approximately|about|around)\s*(\d+)\s*(?:years?|yrs?)`),
}

// ExtractExperienceYears estimates years of experience as the maximum
// plausible figure mentioned in the text. Values outside (0, 50] are ignored
// as noise; unusable input yields 0.
func ExtractExperienceYears(text string) float64 {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)
	maxYears := 0.0

	for _, re := range experiencePatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if years > 0 && years <= 50 && years > maxYears {
				maxYears = years
			}
		}
	}

	return maxYears
}
