package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"cascade", "Conversion:", "build", "Inspection:", "tree", "schema"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	stdout, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(stdout) != "1.2.3" {
		t.Errorf("version output = %q, want 1.2.3", stdout)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	if _, _, err := runCLI(t, "invalid-command"); err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestRootCommand_BuildRequiresFile(t *testing.T) {
	if _, _, err := runCLI(t, "build"); err == nil {
		t.Error("expected error when no file is given")
	}
}

func TestSetVersion_Empty(t *testing.T) {
	SetVersion("2.0.0")
	SetVersion("")
	defer SetVersion("dev")

	if rootCmd.Version != "2.0.0" {
		t.Errorf("SetVersion(\"\") should keep the previous version, got %q", rootCmd.Version)
	}
}

func TestFormatError(t *testing.T) {
	got := FormatError(errors.New("boom"))
	if !strings.Contains(got, "Error: boom") {
		t.Errorf("FormatError() = %q", got)
	}
}

func TestCount(t *testing.T) {
	if got := count(1, "row", "rows"); got != "1 row" {
		t.Errorf("count(1) = %q", got)
	}
	if got := count(3, "row", "rows"); got != "3 rows" {
		t.Errorf("count(3) = %q", got)
	}
}
