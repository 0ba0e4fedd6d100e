package testutil

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DecodedManifest is the subset of the manifest the integration tests inspect.
type DecodedManifest struct {
	Mode  string            `json:"mode"`
	Entry map[string]string `json:"entry"`
	Pages []struct {
		Filename string   `json:"filename"`
		Template string   `json:"template"`
		Chunks   []string `json:"chunks"`
	} `json:"pages"`
	DevServer struct {
		Port  int      `json:"port"`
		Watch []string `json:"watch"`
	} `json:"devServer"`
}

// DecodeManifest parses the JSON manifest a run wrote to stdout.
func DecodeManifest(t *testing.T, result *HarnessResult) *DecodedManifest {
	t.Helper()
	var m DecodedManifest
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &m), "stdout is not a JSON manifest:\n%s", result.Stdout)
	return &m
}

// AssertStubCreated checks that path exists as an empty file and that the
// run logged creating it.
func AssertStubCreated(t *testing.T, result *HarnessResult, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "expected stub entry %s to exist", path)
	require.Zero(t, info.Size(), "stub entry %s must be empty", path)
	require.True(t,
		strings.Contains(result.LogOutput, "Created empty entry file.") && strings.Contains(result.LogOutput, path),
		"expected a log line for creating %s", path,
	)
}
