package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// testCSV is a small dataset in the published column layout.
const testCSV = "Entity,Code,Year,Total number of emigrants\n" +
	"Italy,ITA,1990,3000000\n" +
	"Italy,ITA,2020,3200000\n" +
	"France,FRA,2020,2300000\n" +
	"Europe,,2020,63000000\n" +
	"Asia,,2020,115000000\n"

// writeTestCSV writes testCSV to a temporary file and returns its path.
func writeTestCSV(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "emigrants.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs cmd with args and returns its combined output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
