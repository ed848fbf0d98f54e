package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

func TestRootCmd_Metadata(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "pomo" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "pomo")
	}
}

func TestRootCmd_Help(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	if !strings.Contains(stdout, "pomo") {
		t.Error("help output should mention pomo")
	}
	if !strings.Contains(stdout, "config") {
		t.Error("help output should list the config subcommand")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	inlineFlag := rootCmd.PersistentFlags().Lookup("inline")
	if inlineFlag == nil {
		t.Fatal("--inline flag should be registered")
	}
	if inlineFlag.Shorthand != "i" {
		t.Errorf("inline shorthand = %q, want %q", inlineFlag.Shorthand, "i")
	}
}
