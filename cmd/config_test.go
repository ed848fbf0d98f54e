package cmd

import (
	"strings"
	"testing"
)

func TestConfigCmd_ShowsPathAndSessions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	stdout, _, err := executeCmd(rootCmd, "config")
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	if !strings.Contains(stdout, "config.toml") {
		t.Error("output should contain the config file path")
	}
	if !strings.Contains(stdout, "Focus") {
		t.Error("output should list the focus session")
	}
	if !strings.Contains(stdout, "every 4 focus sessions") {
		t.Error("output should state the long-break cadence")
	}
}
