// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault writes note documents into a local markdown knowledge
// base. The vault owns filename sanitization; the formatter hands over
// titles untouched.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-notes/pkg/types"
)

const (
	noteExt     = ".md"
	metadataDir = ".metadata"
)

// Vault is a directory of markdown notes.
type Vault struct {
	dir string
}

// New opens a vault rooted at cfg.Dir, creating the directory if needed.
func New(cfg types.VaultConfig) (*Vault, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("vault directory not configured: set vault.dir")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating vault directory: %w", err)
	}
	return &Vault{dir: cfg.Dir}, nil
}

// Dir returns the vault root.
func (v *Vault) Dir() string { return v.dir }

// NotePath returns the path a note with the given title would occupy.
func (v *Vault) NotePath(title string) string {
	return filepath.Join(v.dir, SanitizeFileName(title)+noteExt)
}

// Create writes doc as a new note file named after its sanitized title.
// An existing note is left untouched unless overwrite is set.
func (v *Vault) Create(doc types.NoteDocument, overwrite bool) (string, error) {
	path := v.NotePath(doc.Title)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("note %s already exists (use --overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(doc.Body), 0o644); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}
	return path, nil
}

// Append inserts body at the end of an existing note named name (with or
// without the .md extension). The note must already exist; Append is the
// insert-into-open-document flow, not a create.
func (v *Vault) Append(name, body string) (string, error) {
	name = strings.TrimSuffix(name, noteExt)
	path := filepath.Join(v.dir, name+noteExt)

	existing, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading note %s: %w", path, err)
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(body)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing note %s: %w", path, err)
	}
	return path, nil
}

// WriteMetadata records a YAML sidecar for a saved note under
// <vault>/.metadata/<username>.yaml.
func (v *Vault) WriteMetadata(meta types.NoteMetadata) error {
	dir := filepath.Join(v.dir, metadataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating metadata directory: %w", err)
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	path := filepath.Join(dir, SanitizeFileName(meta.Username)+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// SanitizeFileName makes a note title safe for use as a filename:
// path separators and characters rejected by common filesystems become
// hyphens, and leading/trailing dots and spaces are trimmed. An empty
// result falls back to "untitled".
func SanitizeFileName(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		if r < 0x20 {
			return '-'
		}
		return r
	}, title)

	sanitized = strings.Trim(sanitized, ". ")
	if sanitized == "" {
		return "untitled"
	}
	return sanitized
}
