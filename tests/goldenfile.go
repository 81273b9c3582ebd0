package tests

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals
var shouldUpdate = flag.Bool("update", false, "rewrite golden files with the actual responses")

func GetGoldenFilePath(name string) string {
	return path.Join("testdata", name+".json")
}

// AssertJSONResponse compares actual with testdata/<name>.json, ignoring formatting.
// Run the tests with -update to rewrite the golden file.
func AssertJSONResponse(t *testing.T, name string, actual string) {
	t.Helper()

	filePath := GetGoldenFilePath(name)
	if *shouldUpdate {
		var indented bytes.Buffer
		require.NoError(t, json.Indent(&indented, []byte(actual), "", "  "), "response is not json")
		require.NoError(t, os.WriteFile(filePath, indented.Bytes(), 0o600), "unable to write golden file")
	}

	expected, err := os.ReadFile(filePath)
	require.NoError(t, err, "unable to read golden file")
	require.JSONEq(t, string(expected), actual)
}
