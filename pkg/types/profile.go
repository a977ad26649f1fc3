// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the profile-notes pipeline.
package types

// LocalizedString is a field whose value varies by locale, as delivered by
// the profile data API. Keys are locale tags such as "en_US". The formatter
// selects a single preferred locale and does not fall back to others.
type LocalizedString struct {
	// Localized maps a locale tag to the value in that locale.
	Localized map[string]string `json:"localized" yaml:"localized"`
}

// Get returns the value for the given locale tag and whether it was present.
func (l LocalizedString) Get(locale string) (string, bool) {
	v, ok := l.Localized[locale]
	return v, ok
}

// DateStamp is a month/year pair from the profile data API. A month of 0
// means the month is unspecified. For an end date, a year of 0 means the
// position is ongoing.
type DateStamp struct {
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`
}

// EmploymentTypeInternship is the employment type value that marks a
// position as an internship.
const EmploymentTypeInternship = "Internship"

// JobEntry is one position in a profile's work history.
type JobEntry struct {
	// Title is the localized job title.
	Title LocalizedString `json:"title" yaml:"title"`

	// EmploymentType is the position kind (e.g. "Full-time", "Internship").
	EmploymentType string `json:"employmentType" yaml:"employment_type"`

	// CompanyName is the localized employer name.
	CompanyName LocalizedString `json:"companyName" yaml:"company_name"`

	// Location is a free-text place name, possibly empty.
	Location string `json:"location" yaml:"location"`

	// Description is newline-delimited free text, possibly empty.
	Description string `json:"description" yaml:"description"`

	// Start is when the position began.
	Start DateStamp `json:"start" yaml:"start"`

	// End is when the position ended. End.Year == 0 means ongoing.
	End DateStamp `json:"end" yaml:"end"`
}

// EducationEntry is one entry in a profile's education history.
type EducationEntry struct {
	// FieldOfStudy is the subject area, possibly empty.
	FieldOfStudy string `json:"fieldOfStudy" yaml:"field_of_study"`

	// Degree is free text, optionally of the form "<level>-<description>"
	// (e.g. "Bachelor-Computer Science").
	Degree string `json:"degree" yaml:"degree"`

	// SchoolName is the institution name.
	SchoolName string `json:"schoolName" yaml:"school_name"`

	// Description is newline-delimited free text, possibly empty.
	Description string `json:"description" yaml:"description"`

	// Activities is newline-delimited free text, possibly empty.
	Activities string `json:"activities" yaml:"activities"`

	// End holds the graduation date. End.Year == 0 means unspecified.
	End DateStamp `json:"end" yaml:"end"`
}

// ProfileRecord is a professional profile as returned by the data API.
// It is immutable for the duration of one transformation.
type ProfileRecord struct {
	// FirstName and LastName are required.
	FirstName string `json:"firstName" yaml:"first_name"`
	LastName  string `json:"lastName" yaml:"last_name"`

	// Headline is a short tagline, possibly empty.
	Headline string `json:"headline" yaml:"headline"`

	// Summary is a free-text self-description, possibly empty.
	Summary string `json:"summary" yaml:"summary"`

	// Positions is the ordered work history. A nil slice means the field
	// was absent from the record; an empty slice is a valid empty history.
	Positions []JobEntry `json:"positions" yaml:"positions"`

	// Educations is the ordered education history. Nil means absent.
	Educations []EducationEntry `json:"educations" yaml:"educations"`
}

// SearchResultEntry is one candidate from a profile search. It is shown to
// the user for selection and carries no formatting logic.
type SearchResultEntry struct {
	// Username identifies the profile for a follow-up fetch.
	Username string `json:"username" yaml:"username"`

	// FullName is the display name.
	FullName string `json:"fullName" yaml:"full_name"`

	// Location is a free-text place name.
	Location string `json:"location" yaml:"location"`

	// Headline is the profile tagline.
	Headline string `json:"headline" yaml:"headline"`

	// Summary is the profile self-description.
	Summary string `json:"summary" yaml:"summary"`
}
