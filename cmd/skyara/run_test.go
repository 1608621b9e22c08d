package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEstimateTable(t *testing.T) {
	var buf bytes.Buffer
	if err := runEstimate(&buf, "testdata/project.yaml", "", "table"); err != nil {
		t.Fatalf("runEstimate: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Immeuble R+2 (flat mode)", "Financial recap", "1,324,650 DH", "Level breakdown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunEstimateMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := runEstimate(&buf, "testdata/project.yaml", "", "markdown"); err != nil {
		t.Fatalf("runEstimate: %v", err)
	}
	if !strings.Contains(buf.String(), "## Summary") || !strings.Contains(buf.String(), "| **Total investment** | **1,324,650 DH** |") {
		t.Errorf("unexpected markdown:\n%s", buf.String())
	}
}

func TestRunEstimateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runEstimate(&buf, "testdata/detailed.toml", "", "json"); err != nil {
		t.Fatalf("runEstimate: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &body); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"parameters", "levels", "result", "validation"} {
		if _, ok := body[key]; !ok {
			t.Errorf("JSON output missing %q", key)
		}
	}
}

func TestRunEstimateUnknownFormat(t *testing.T) {
	if err := runEstimate(&bytes.Buffer{}, "testdata/project.yaml", "", "csv"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunValidateInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte("name: broken\nterrain:\n  area: -5\n  facades: 1\n  cos: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err := runValidate(&buf, path, "")
	if !errors.Is(err, errInvalidProject) {
		t.Fatalf("error = %v, want errInvalidProject", err)
	}
	if !strings.Contains(buf.String(), "Result: INVALID") {
		t.Errorf("report not printed:\n%s", buf.String())
	}
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "out.pdf")
	xlsx := filepath.Join(dir, "out.xlsx")
	if err := runReport(&bytes.Buffer{}, "testdata/project.yaml", "", pdf, xlsx); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	for _, p := range []string{pdf, xlsx} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("%s not written: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}

	if err := runReport(&bytes.Buffer{}, "testdata/project.yaml", "", "", ""); err == nil {
		t.Error("expected error when no output is requested")
	}
}

func TestRunReference(t *testing.T) {
	var buf bytes.Buffer
	if err := runReference(&buf, ""); err != nil {
		t.Fatalf("runReference: %v", err)
	}
	if !strings.Contains(buf.String(), "reference_surface: 100") {
		t.Errorf("reference YAML missing:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "112,000 DH") {
		t.Errorf("foundation total missing:\n%s", buf.String())
	}
}
