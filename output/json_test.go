package output_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asatlas/peergroup/grouping"
	"github.com/asatlas/peergroup/model"
	"github.com/asatlas/peergroup/output"
)

func TestSaveDocumentRoundTrip(t *testing.T) {
	raw := `{"100":{"asn":"100","as_info":{"name":"NET & CO"},"links":[{"peer_as":"1","peer_country":"Perú"}]}}`
	doc := model.NewDocument()
	require.NoError(t, json.Unmarshal([]byte(raw), doc))
	grouping.GroupByCountry(doc)

	path := filepath.Join(t.TempDir(), "grouped.json")
	require.NoError(t, output.SaveDocument(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// human-readable indentation, literal UTF-8, no HTML escaping
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"100\": {"), "output not indented: %s", data)
	assert.Contains(t, string(data), "Perú")
	assert.Contains(t, string(data), "NET & CO")
	assert.NotContains(t, string(data), `\u00`)

	reload := model.NewDocument()
	require.NoError(t, json.Unmarshal(data, reload))
	assert.Equal(t, doc.ASNs(), reload.ASNs())
	require.Len(t, reload.Get("100").Links, 1)
}

func TestSaveDocumentKeepsExistingFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grouped.json")
	require.NoError(t, os.WriteFile(path, []byte("previous run"), 0o644))

	// a destination inside a missing directory cannot be written
	missing := filepath.Join(dir, "missing", "grouped.json")
	err := output.SaveDocument(missing, model.NewDocument())
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run", string(data))
}

func TestSaveDocumentFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grouped.json")
	require.NoError(t, output.SaveDocument(path, model.NewDocument()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSaveDocumentLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grouped.json")
	require.NoError(t, output.SaveDocument(path, model.NewDocument()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "grouped.json", entries[0].Name())
}
