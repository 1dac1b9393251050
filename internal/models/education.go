// internal/models/education.go
package models

import "strings"

// EducationLevel is the closed set of education levels a candidate record can
// carry. EducationUnknown covers both "absent" and anything we failed to parse.
type EducationLevel string

const (
	EducationUnknown    EducationLevel = ""
	EducationHighSchool EducationLevel = "high_school"
	EducationAssociate  EducationLevel = "associate"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationPhD        EducationLevel = "phd"
	EducationOther      EducationLevel = "other"
)

var educationLevels = map[EducationLevel]bool{
	EducationHighSchool: true,
	EducationAssociate:  true,
	EducationBachelor:   true,
	EducationMaster:     true,
	EducationPhD:        true,
	EducationOther:      true,
}

// ParseEducationLevel maps a raw string into the closed enum. Unrecognized
// values become EducationUnknown so callers never compare raw strings.
func ParseEducationLevel(s string) EducationLevel {
	level := EducationLevel(strings.ToLower(strings.TrimSpace(s)))
	if educationLevels[level] {
		return level
	}
	return EducationUnknown
}

// Known reports whether the level is a concrete member of the enum.
func (e EducationLevel) Known() bool {
	return educationLevels[e]
}

func (e EducationLevel) String() string {
	if e == EducationUnknown {
		return "unknown"
	}
	return string(e)
}
