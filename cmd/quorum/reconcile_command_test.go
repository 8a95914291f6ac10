package main

import (
	"encoding/json"
	"testing"
)

func TestReconcileCommandMajority(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	a := writeTranscriptFile(t, dir, "engine-a.txt", "This is a test.")
	b := writeTranscriptFile(t, dir, "engine-b.txt", "This is a tesst.")
	c := writeTranscriptFile(t, dir, "engine-c.txt", "Thiss is a test.")

	out, err := runCLI(t, "--config", cfgPath, "reconcile", a, b, c)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	requireContains(t, out, "This is a test.")
}

func TestReconcileCommandJSON(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	a := writeTranscriptFile(t, dir, "one.txt", "Hello world.")
	b := writeTranscriptFile(t, dir, "two.txt", "Hello world.")

	out, err := runCLI(t, "--config", cfgPath, "reconcile", "--json", a, b)
	if err != nil {
		t.Fatalf("reconcile --json: %v", err)
	}

	var report struct {
		RunID        string `json:"run_id"`
		Text         string `json:"text"`
		Kept         []string
		ClusterCount int `json:"cluster_count"`
		Scores       []struct {
			Metric string
			Label  string
			Score  float64
		}
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if report.Text != "Hello world." {
		t.Errorf("text = %q", report.Text)
	}
	if report.RunID == "" {
		t.Error("expected run_id for saved run")
	}
	if len(report.Kept) != 2 || report.ClusterCount != 1 {
		t.Errorf("unexpected report: %+v", report)
	}
	if len(report.Scores) == 0 {
		t.Error("expected scores against output")
	}
}

func TestReconcileCommandDirAndHistory(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	writeTranscriptFile(t, dir, "one.txt", "Shared sentence here.")
	writeTranscriptFile(t, dir, "two.txt", "Shared sentence here.")
	writeTranscriptFile(t, dir, "notes.md", "ignored")

	out, err := runCLI(t, "--config", cfgPath, "reconcile", "--dir", dir)
	if err != nil {
		t.Fatalf("reconcile --dir: %v", err)
	}
	requireContains(t, out, "Shared sentence here.")

	out, err = runCLI(t, "--config", cfgPath, "runs", "list")
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	requireContains(t, out, "Shared sentence here.")
}

func TestReconcileCommandNoSave(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	a := writeTranscriptFile(t, dir, "one.txt", "Nothing stored.")

	if _, err := runCLI(t, "--config", cfgPath, "reconcile", "--no-save", a); err != nil {
		t.Fatalf("reconcile --no-save: %v", err)
	}

	out, err := runCLI(t, "--config", cfgPath, "runs", "list")
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	requireContains(t, out, "No runs recorded")
}

func TestReconcileCommandNoInputs(t *testing.T) {
	cfgPath := writeTestConfig(t)
	if _, err := runCLI(t, "--config", cfgPath, "reconcile"); err == nil {
		t.Fatal("expected error without inputs")
	}
}
