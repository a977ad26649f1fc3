// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// wikilinkPattern matches cross-reference links: [[Name]].
var wikilinkPattern = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// ExtractLinks returns the cross-reference targets in body, in order of
// first appearance, without duplicates.
func ExtractLinks(body string) []string {
	matches := wikilinkPattern.FindAllStringSubmatch(body, -1)
	seen := make(map[string]bool)
	var links []string
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		links = append(links, name)
	}
	return links
}

// NoteFiles returns the markdown note paths in the vault root, sorted.
func (v *Vault) NoteFiles() ([]string, error) {
	entries, err := os.ReadDir(v.dir)
	if err != nil {
		return nil, fmt.Errorf("reading vault directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), noteExt) {
			continue
		}
		files = append(files, filepath.Join(v.dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// UnresolvedLink is a cross-reference whose target note does not exist.
type UnresolvedLink struct {
	// Note is the note filename containing the link.
	Note string

	// Target is the linked name with no matching note in the vault.
	Target string
}

// CheckLinks scans every note in the vault and reports cross-references
// whose target note is missing. Targets are matched against sanitized
// note filenames, the same rule Create uses.
func (v *Vault) CheckLinks() ([]UnresolvedLink, error) {
	files, err := v.NoteFiles()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(files))
	for _, f := range files {
		known[strings.TrimSuffix(filepath.Base(f), noteExt)] = true
	}

	var unresolved []UnresolvedLink
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filepath.Base(f), err)
		}
		for _, target := range ExtractLinks(string(data)) {
			if !known[SanitizeFileName(target)] {
				unresolved = append(unresolved, UnresolvedLink{
					Note:   filepath.Base(f),
					Target: target,
				})
			}
		}
	}
	return unresolved, nil
}
