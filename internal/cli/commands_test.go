package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v4"

	"github.com/danieljhkim/cascade/internal/cascade"
	"github.com/danieljhkim/cascade/internal/config"
)

const geoCSV = "region|name,region|label,district|name,district|label\n" +
	"North,North Region,D1,District One\n" +
	"North,North Region,D2,District Two\n" +
	"South,South Region,D1,District Uno\n"

// setupTestEnv writes geo.csv into a temp dir and returns its path.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "geo.csv")
	if err := os.WriteFile(input, []byte(geoCSV), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	t.Setenv(config.EnvConfig, "")
	return input
}

// runCLI executes the root command with fresh flag state.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	jsonOutput, verbose, configPath = false, false, ""
	buildSheet, buildOutput, buildDryRun = "", "", false
	treeSheet, treeFormat = "", "text"
	schemaSheet = ""
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		if f := c.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
		}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildCommand(t *testing.T) {
	input := setupTestEnv(t)

	stdout, _, err := runCLI(t, "build", input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := filepath.Join(filepath.Dir(input), "geo-cascade.csv")
	if !strings.Contains(stdout, "Successfully saved file to: "+output) {
		t.Errorf("unexpected output: %q", stdout)
	}
	if !strings.Contains(stdout, "Renamed 1 duplicate name") {
		t.Errorf("expected rename warning, got %q", stdout)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "district_list,D1_1,District Uno,South") {
		t.Errorf("unexpected output file:\n%s", data)
	}
}

func TestBuildCommand_OutputFlagAndJSON(t *testing.T) {
	input := setupTestEnv(t)
	output := filepath.Join(filepath.Dir(input), "out", "choices.xlsx")

	stdout, _, err := runCLI(t, "build", input, "-o", output, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Output  string   `json:"output"`
		Rows    int      `json:"rows"`
		Renamed int      `json:"renamed"`
		Levels  []string `json:"levels"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v, output: %q", err, stdout)
	}
	if result.Output != output || result.Rows != 5 || result.Renamed != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected workbook at %s: %v", output, err)
	}
}

func TestBuildCommand_DryRun(t *testing.T) {
	input := setupTestEnv(t)

	stdout, _, err := runCLI(t, "build", input, "--dry-run")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Would write 5 rows") || !strings.Contains(stdout, "D1_1") {
		t.Errorf("unexpected dry run output: %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(input), "geo-cascade.csv")); !os.IsNotExist(err) {
		t.Error("dry run should not write output")
	}
}

func TestBuildCommand_SchemaError(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "bad.csv")
	if err := os.WriteFile(input, []byte("region|name,district|label\nA,B\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	t.Setenv(config.EnvConfig, "")

	_, _, err := runCLI(t, "build", input)
	if !errors.Is(err, cascade.ErrSchema) {
		t.Errorf("Execute() error = %v, want ErrSchema", err)
	}
}

func TestBuildCommand_ConfigFile(t *testing.T) {
	input := setupTestEnv(t)
	dir := filepath.Dir(input)
	cfgPath := filepath.Join(dir, "cascade.yaml")
	if err := os.WriteFile(cfgPath, []byte("suffix: -choices\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, _, err := runCLI(t, "build", input, "--config", cfgPath); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "geo-choices.csv")); err != nil {
		t.Errorf("expected output named by config suffix: %v", err)
	}
}

func TestBuildCommand_VerboseLogs(t *testing.T) {
	input := setupTestEnv(t)

	_, stderr, err := runCLI(t, "build", input, "--verbose", "--dry-run")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "parsed schema") || !strings.Contains(stderr, "run=") {
		t.Errorf("expected debug logs on stderr, got %q", stderr)
	}
}

func TestTreeCommand_Text(t *testing.T) {
	input := setupTestEnv(t)

	stdout, _, err := runCLI(t, "tree", input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{
		"Id: region, name: North, label: North Region",
		"  Id: district, name: D1, label: District One",
		"  Id: district, name: D1_1, label: District Uno (was D1)",
	}
	for _, line := range want {
		if !strings.Contains(stdout, line) {
			t.Errorf("expected outline to contain %q, got:\n%s", line, stdout)
		}
	}
}

func TestTreeCommand_YAML(t *testing.T) {
	input := setupTestEnv(t)

	stdout, _, err := runCLI(t, "tree", input, "--format", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc struct {
		Nodes int `yaml:"nodes"`
		Tree  []struct {
			Name string `yaml:"name"`
		} `yaml:"tree"`
	}
	if err := yaml.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("expected valid YAML, got error: %v\n%s", err, stdout)
	}
	if doc.Nodes != 5 || len(doc.Tree) != 2 || doc.Tree[1].Name != "South" {
		t.Errorf("unexpected YAML document: %+v", doc)
	}
}

func TestTreeCommand_BadFormat(t *testing.T) {
	input := setupTestEnv(t)

	if _, _, err := runCLI(t, "tree", input, "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSchemaCommand(t *testing.T) {
	input := setupTestEnv(t)

	stdout, _, err := runCLI(t, "schema", input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Levels (2 levels)", "region_list", "district_list", "name+label"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected schema output to contain %q, got:\n%s", want, stdout)
		}
	}

	stdout, _, err = runCLI(t, "schema", input, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var schema cascade.Schema
	if err := json.Unmarshal([]byte(stdout), &schema); err != nil {
		t.Fatalf("expected valid JSON: %v", err)
	}
	if len(schema.Levels) != 2 || schema.Levels[0].ID != "region" {
		t.Errorf("unexpected schema: %+v", schema)
	}
}

func TestMissingInput(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	_, _, err := runCLI(t, "build", filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Error("expected error for missing input")
	}
}
