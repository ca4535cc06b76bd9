package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

func openReader(t *testing.T, path string) *log.Reader {
	t.Helper()
	reader, err := log.NewReader(path)
	require.NoError(t, err)
	t.Cleanup(func() { reader.Close() })
	return reader
}

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	require.NoError(t, Export(openReader(t, path), "jsonl", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)

	var state Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &state))
	assert.Equal(t, "2026-03-02T09:30:00.000000Z", state.Timestamp)
	assert.Equal(t, testSession, state.SessionID)
	assert.Equal(t, "OUT", state.Direction)
	assert.Equal(t, "STATE", state.Category)
	assert.Equal(t, "CONNECTING", state.OldState)
	assert.Equal(t, "CONNECTED", state.NewState)

	var read Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &read))
	assert.Equal(t, "READ", read.Type)
	assert.Equal(t, "Motor.Speed", read.Topic)
	assert.Equal(t, uint32(1), read.Handle)
	assert.Equal(t, "int32", read.DataType)
	assert.Equal(t, "5", read.Value)
	assert.Equal(t, []string{"NotTopical", "FlagOverflow"}, read.Quality)

	var sync Record
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &sync))
	assert.Equal(t, "SYNC_WRITE", sync.Type)
	assert.Equal(t, []uint32{3}, sync.Handles)
	assert.Equal(t, "OK", sync.Status)

	var failure Record
	require.NoError(t, json.Unmarshal([]byte(lines[5]), &failure))
	assert.Equal(t, "read", failure.Op)
	assert.Equal(t, "NOK", failure.Status)
	assert.Equal(t, "Motor.Missing", failure.Topic)
}

func TestExportToJSON(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	require.NoError(t, Export(openReader(t, path), "json", &buf))

	var records []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 7)
	assert.Equal(t, "RUNTIME", records[6].Source)
	assert.Empty(t, records[6].SessionID)
}

func TestExportEmptyJSON(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	require.NoError(t, Export(openReader(t, path), "json", &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	require.NoError(t, Export(openReader(t, path), "csv", &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, csvHeader, rows[0])

	assert.Equal(t, "CONNECTING -> CONNECTED", rows[1][9])
	assert.Equal(t, "NotTopical|FlagOverflow", rows[2][7])
	assert.Equal(t, "Valid", rows[3][7])
	assert.Equal(t, "3", rows[4][9])
	assert.Equal(t, "1 2", rows[5][9])
	assert.Equal(t, "NOK", rows[5][8])
	assert.Equal(t, `no readable handle for topic "Motor.Missing"`, rows[6][9])
	assert.Equal(t, "SIAPP connected to simulation (session 1)", rows[7][9])
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	err := Export(openReader(t, path), "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown format: xml")
}

func TestRunExportToFile(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	output := filepath.Join(t.TempDir(), "out.jsonl")

	require.NoError(t, RunExport(path, "jsonl", output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(string(data), "\n"))
}
