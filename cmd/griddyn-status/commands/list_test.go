package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/griddyn/griddyn-go/pkg/wire"
)

func TestRunListTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(FormatTable, &buf))
	output := buf.String()

	assert.Contains(t, output, "griddyn_status (ABI 1.0)")
	assert.Contains(t, output, "griddyn_solve_error")
	assert.Contains(t, output, "function_failure")
	// Header, blank line, column header, 12 rows.
	assert.Equal(t, 15, strings.Count(output, "\n"))
}

func TestRunListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(FormatJSON, &buf))

	var table wire.Table
	require.NoError(t, json.Unmarshal(buf.Bytes(), &table))
	assert.Equal(t, wire.LocalTable(), &table)
}

func TestRunListYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(FormatYAML, &buf))

	var table wire.Table
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &table))
	assert.Equal(t, wire.LocalTable(), &table)
}

func TestRunListCBOR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(FormatCBOR, &buf))

	table, err := wire.DecodeTable(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, table.Entries, 12)
}

func TestRunListUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RunList("xml", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.cbor")
	require.NoError(t, RunListFile(FormatCBOR, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	table, err := wire.DecodeTable(data)
	require.NoError(t, err)
	assert.Equal(t, wire.LocalTable(), table)
}

func TestRunListFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.xml")
	require.Error(t, RunListFile("xml", path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "failed write must not leave %s behind", path)
}

func TestRunListFileBadPath(t *testing.T) {
	err := RunListFile(FormatJSON, filepath.Join(t.TempDir(), "missing", "status.json"))
	assert.Error(t, err)
}
