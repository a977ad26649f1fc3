// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-notes/pkg/types"
)

func testVault(t *testing.T) *Vault {
	t.Helper()
	v, err := New(types.VaultConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	return v
}

func TestNewRequiresDir(t *testing.T) {
	_, err := New(types.VaultConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault.dir")
}

func TestCreate(t *testing.T) {
	v := testVault(t)
	doc := types.NoteDocument{Title: "Jane Doe", Body: "*Engineer*\n"}

	path, err := v.Create(doc, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(v.Dir(), "Jane Doe.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Body, string(data))

	// A second create refuses to clobber.
	_, err = v.Create(doc, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Unless overwrite is set.
	doc.Body = "updated\n"
	_, err = v.Create(doc, true)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated\n", string(data))
}

func TestCreateSanitizesTitle(t *testing.T) {
	v := testVault(t)
	path, err := v.Create(types.NoteDocument{Title: `Jane/Doe: "CEO"?`, Body: "x\n"}, false)
	require.NoError(t, err)
	assert.Equal(t, "Jane-Doe- -CEO--.md", filepath.Base(path))
}

func TestAppend(t *testing.T) {
	v := testVault(t)
	_, err := v.Create(types.NoteDocument{Title: "Daily", Body: "existing text"}, false)
	require.NoError(t, err)

	path, err := v.Append("Daily", "## Work\nnew section\n")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing text\n## Work\nnew section\n", string(data))

	// Name with extension resolves to the same note.
	_, err = v.Append("Daily.md", "more\n")
	require.NoError(t, err)
}

func TestAppendMissingNote(t *testing.T) {
	v := testVault(t)
	_, err := v.Append("nope", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading note")
}

func TestWriteMetadata(t *testing.T) {
	v := testVault(t)
	meta := types.NoteMetadata{
		Username:  "jdoe",
		Title:     "Jane Doe",
		Source:    "https://api.example.com/v1",
		FetchedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, v.WriteMetadata(meta))

	data, err := os.ReadFile(filepath.Join(v.Dir(), ".metadata", "jdoe.yaml"))
	require.NoError(t, err)

	var got types.NoteMetadata
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, meta.Username, got.Username)
	assert.Equal(t, meta.Title, got.Title)
	assert.Equal(t, meta.Source, got.Source)
	assert.True(t, meta.FetchedAt.Equal(got.FetchedAt), "FetchedAt = %v, want %v", got.FetchedAt, meta.FetchedAt)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "Jane Doe"},
		{"a/b\\c:d", "a-b-c-d"},
		{"trailing dots...", "trailing dots"},
		{"  ", "untitled"},
		{"", "untitled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in), "SanitizeFileName(%q)", tt.in)
	}
}

func TestExtractLinks(t *testing.T) {
	body := "worked at [[Acme]] and [[Acme Labs]], then [[Acme]] again\nplain [not a link]\n"
	assert.Equal(t, []string{"Acme", "Acme Labs"}, ExtractLinks(body))
	assert.Nil(t, ExtractLinks("no links here"))
}

func TestCheckLinks(t *testing.T) {
	v := testVault(t)
	_, err := v.Create(types.NoteDocument{Title: "Jane Doe", Body: "at [[Acme]], studied at [[MIT]]\n"}, false)
	require.NoError(t, err)
	_, err = v.Create(types.NoteDocument{Title: "Acme", Body: "a company\n"}, false)
	require.NoError(t, err)

	unresolved, err := v.CheckLinks()
	require.NoError(t, err)
	assert.Equal(t, []UnresolvedLink{{Note: "Jane Doe.md", Target: "MIT"}}, unresolved)
}
