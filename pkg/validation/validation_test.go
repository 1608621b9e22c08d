package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should have empty slices")
	}
	if r.Summary != "0 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestAddError(t *testing.T) {
	r := NewReport()
	r.AddError(Result{
		Level:   LevelSchema,
		Message: "bad value",
	})
	if r.Valid {
		t.Error("report with error should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(r.Errors))
	}
	if r.Errors[0].Severity != SeverityError {
		t.Error("AddError should set severity to error")
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestAddWarning(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelAnalytical, Message: "heads up"})
	if !r.Valid {
		t.Error("warnings should not invalidate report")
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(r.Warnings))
	}
	if r.Warnings[0].Severity != SeverityWarning {
		t.Error("AddWarning should set severity to warning")
	}
}

func TestMerge(t *testing.T) {
	r1 := NewReport()
	r1.AddWarning(Result{Level: LevelSchema, Message: "warn1"})

	r2 := NewReport()
	r2.AddError(Result{Level: LevelAnalytical, Message: "err1"})
	r2.AddWarning(Result{Level: LevelAnalytical, Message: "warn2"})
	r2.AddInfo(Result{Level: LevelAnalytical, Message: "info1"})

	r1.Merge(r2)

	if r1.Valid {
		t.Error("merged report should be invalid when other has errors")
	}
	if r1.Summary != "1 errors, 2 warnings, 1 info" {
		t.Errorf("unexpected summary: %s", r1.Summary)
	}
}

func TestMergeNil(t *testing.T) {
	r := NewReport()
	r.Merge(nil)
	if !r.Valid {
		t.Error("merging nil should keep report valid")
	}
}

func TestErrValidReport(t *testing.T) {
	if err := NewReport().Err(); err != nil {
		t.Errorf("valid report should yield nil error, got %v", err)
	}
}

func TestErrConfigurationError(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelSchema, Message: "must be > 0", SpecPath: "terrain.area"})
	r.AddWarning(Result{Level: LevelSchema, Message: "ignored"})

	err := r.Err()
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T", err)
	}
	if cfgErr.Report != r {
		t.Error("ConfigurationError should carry the report")
	}
	if !strings.Contains(err.Error(), "terrain.area: must be > 0") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if strings.Contains(err.Error(), "ignored") {
		t.Error("warnings should not appear in the error message")
	}
}
