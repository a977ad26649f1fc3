// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// NoteDocument is the formatter's sole output: a title and an assembled
// markdown body. The title is not sanitized for filesystem use; the vault
// does that when it derives a filename.
type NoteDocument struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// NoteMetadata is the sidecar record written next to a saved note.
type NoteMetadata struct {
	// Username is the profile identifier at the data source.
	Username string `json:"username" yaml:"username"`

	// Title is the note title before filename sanitization.
	Title string `json:"title" yaml:"title"`

	// Source is the remote endpoint the profile was fetched from.
	Source string `json:"source" yaml:"source"`

	// FetchedAt is when the profile record was retrieved.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
