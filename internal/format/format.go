// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format transforms a professional-profile record into a linked
// markdown note. The transformation is pure and deterministic: the same
// record always yields byte-identical output, and a failed transformation
// never returns a partial note.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/profile-notes/pkg/types"
)

// DefaultLocale is the preferred locale key used for localized fields when
// Options.Locale is empty. There is no fallback chain: a localized field
// with no entry for the preferred locale is a TransformError.
const DefaultLocale = "en_US"

const (
	workHeader      = "## Work\n"
	educationHeader = "## Education\n"

	// footer is the fixed separator and tag marker closing every note.
	footer = "\n---\n#person\n"
)

// Options controls a single transformation.
type Options struct {
	// Locale selects the entry used from localized fields (default "en_US").
	Locale string
}

// entitySet tracks organization and institution names already rendered in
// the note under construction. Membership is exact-string and
// case-sensitive. One set lives for exactly one Format call; companies and
// schools share it.
type entitySet map[string]struct{}

// ref renders name as a cross-reference link on its first occurrence in
// the note and as plain text on every later occurrence.
func (s entitySet) ref(name string) string {
	_, seen := s[name]
	s[name] = struct{}{}
	if seen {
		return name
	}
	return "[[" + name + "]]"
}

// Format turns a profile record into a note document titled
// "<firstName> <lastName>".
//
// Work history keeps an asymmetric order: entries are visited in input
// order, but each ongoing position (end year 0) is stacked above
// everything rendered before it, while past positions accumulate below in
// input order. Ongoing positions therefore appear first, most recently
// processed on top.
//
// Format fails with *MalformedRecordError when a required field is absent
// and with *TransformError when an entry cannot be rendered.
func Format(profile types.ProfileRecord, opts Options) (types.NoteDocument, error) {
	if err := validate(profile); err != nil {
		return types.NoteDocument{}, err
	}

	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	seen := entitySet{}

	var current string
	var past strings.Builder
	for i, job := range profile.Positions {
		chunk, ongoing, err := renderJob(job, locale, seen)
		if err != nil {
			return types.NoteDocument{}, &TransformError{
				Entry: fmt.Sprintf("position %d", i+1),
				Err:   err,
			}
		}
		if ongoing {
			current = chunk + current
		} else {
			past.WriteString(chunk)
		}
	}

	var education strings.Builder
	for _, entry := range profile.Educations {
		education.WriteString(renderEducation(entry, seen))
	}

	var body strings.Builder
	if profile.Headline != "" {
		body.WriteString("*" + profile.Headline + "*\n")
	}
	if profile.Summary != "" {
		body.WriteString("\n" + profile.Summary + "\n")
	} else {
		// Blank line placeholder keeps the section spacing stable.
		body.WriteString("\n")
	}

	body.WriteString("\n" + workHeader)
	body.WriteString(current)
	body.WriteString(past.String())

	body.WriteString("\n" + educationHeader)
	body.WriteString(education.String())

	body.WriteString(footer)

	return types.NoteDocument{
		Title: profile.FirstName + " " + profile.LastName,
		Body:  body.String(),
	}, nil
}

// validate rejects records lacking required top-level fields. A nil
// positions or educations slice means the field was absent from the wire
// record; a present-but-empty slice is valid and renders an empty section.
func validate(profile types.ProfileRecord) error {
	switch {
	case profile.FirstName == "":
		return &MalformedRecordError{Field: "firstName"}
	case profile.LastName == "":
		return &MalformedRecordError{Field: "lastName"}
	case profile.Positions == nil:
		return &MalformedRecordError{Field: "positions"}
	case profile.Educations == nil:
		return &MalformedRecordError{Field: "educations"}
	}
	return nil
}

// renderJob renders one work-history entry as an entry line plus bulleted
// sub-lines, and reports whether the position is ongoing.
func renderJob(job types.JobEntry, locale string, seen entitySet) (string, bool, error) {
	title, ok := job.Title.Get(locale)
	if !ok {
		return "", false, fmt.Errorf("title has no %q entry", locale)
	}
	if job.EmploymentType == types.EmploymentTypeInternship && !strings.Contains(title, "Intern") {
		title += " Intern"
	}

	company, ok := job.CompanyName.Get(locale)
	if !ok {
		return "", false, fmt.Errorf("company name has no %q entry", locale)
	}

	ongoing := job.End.Year == 0
	var date string
	if ongoing {
		date = "since " + stamp(job.Start)
	} else {
		date = "from " + stamp(job.Start) + " to " + stamp(job.End)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** at %s, %s\n", title, seen.ref(company), date)
	if job.Location != "" {
		b.WriteString("- " + job.Location + "\n")
	}
	writeBullets(&b, job.Description)

	return b.String(), ongoing, nil
}

// renderEducation renders one education entry. The degree text is the
// trimmed substring after the first "-" when the degree has the
// "<level>-<description>" form; the field of study fills in when the
// degree is empty. The graduation year appears only when known.
func renderEducation(entry types.EducationEntry, seen entitySet) string {
	degree := entry.Degree
	if i := strings.Index(degree, "-"); i >= 0 {
		degree = strings.TrimSpace(degree[i+1:])
	}
	if degree == "" {
		degree = entry.FieldOfStudy
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** from %s", degree, seen.ref(entry.SchoolName))
	if entry.End.Year != 0 {
		b.WriteString(", " + strconv.Itoa(entry.End.Year))
	}
	b.WriteString(".\n")
	writeBullets(&b, entry.Description)
	writeBullets(&b, entry.Activities)

	return b.String()
}

// stamp renders a date as "month/year", or just "year" when the month is
// unspecified.
func stamp(d types.DateStamp) string {
	if d.Month != 0 {
		return strconv.Itoa(d.Month) + "/" + strconv.Itoa(d.Year)
	}
	return strconv.Itoa(d.Year)
}

// writeBullets splits newline-delimited text into bulleted sub-lines,
// skipping blank lines.
func writeBullets(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("- " + line + "\n")
	}
}
