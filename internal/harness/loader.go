package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"

	"github.com/stretchr/testify/require"
)

// LoadTestCase loads a case from a yaml file.
func LoadTestCase(t *testing.T, path string) *TestCase {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	tc := &TestCase{}
	err = yaml.Unmarshal(data, tc)
	require.NoError(t, err, "parse %s", path)

	tc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return tc
}

// DiscoverTestCases loads every .yaml case file directly under root.
func DiscoverTestCases(t *testing.T, root string) []*TestCase {
	t.Helper()

	entries, err := os.ReadDir(root)
	require.NoError(t, err)

	var testCases []*TestCase
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		testCases = append(testCases, LoadTestCase(t, filepath.Join(root, entry.Name())))
	}
	return testCases
}

// expandArgs replaces the {{input}} and {{output}} placeholders.
func expandArgs(args []string, inputPath, outputPath string) []string {
	r := strings.NewReplacer("{{input}}", inputPath, "{{output}}", outputPath)
	expanded := make([]string, len(args))
	for i, arg := range args {
		expanded[i] = r.Replace(arg)
	}
	return expanded
}
