package store_test

import (
	"context"
	"testing"
	"time"

	"quorum/internal/store"
	"quorum/internal/testsupport"
)

func TestSaveAndGetRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	run := store.NewRun()
	run.SourceCount = 3
	run.KeptCount = 2
	run.ClusterCount = 4
	run.Output = "This is a test."
	run.Sources = []store.RunSource{
		{Position: 0, Label: "Engine One", Kept: true},
		{Position: 1, Label: "Engine Two", Kept: true},
		{Position: 2, Label: "Garbage", Kept: false},
	}
	run.Scores = []store.RunScore{
		{Metric: "edit", Label: "Engine One", Score: 97.5},
		{Metric: "jaccard", Label: "Engine One", Score: 0.9},
	}

	if err := st.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	got, err := st.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected run, got nil")
	}
	if got.Output != run.Output || got.SourceCount != 3 || got.KeptCount != 2 || got.ClusterCount != 4 {
		t.Errorf("unexpected run: %+v", got)
	}
	if len(got.Sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(got.Sources))
	}
	if got.Sources[2].Label != "Garbage" || got.Sources[2].Kept {
		t.Errorf("unexpected third source: %+v", got.Sources[2])
	}
	if len(got.Scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(got.Scores))
	}
}

func TestGetRunMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	got, err := st.GetRun(context.Background(), "no-such-run")
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing run, got %+v", got)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		run := store.NewRun()
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		run.Output = "output"
		if err := st.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun returned error: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[2].ID != ids[0] {
		t.Errorf("runs not newest first: %v", []string{runs[0].ID, runs[1].ID, runs[2].ID})
	}

	limited, err := st.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 runs with limit, got %d", len(limited))
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	var newest string
	for i := 0; i < 5; i++ {
		run := store.NewRun()
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		run.Output = "output"
		if err := st.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun returned error: %v", err)
		}
		newest = run.ID
	}

	removed, err := st.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if removed != 3 {
		t.Errorf("Prune removed %d, want 3", removed)
	}

	runs, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs after prune, got %d", len(runs))
	}
	if runs[0].ID != newest {
		t.Errorf("expected newest run to survive prune")
	}
}

func TestPruneAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	run := store.NewRun()
	run.Output = "output"
	run.Sources = []store.RunSource{{Position: 0, Label: "a", Kept: true}}
	if err := st.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	removed, err := st.Prune(ctx, 0)
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if removed != 1 {
		t.Errorf("Prune removed %d, want 1", removed)
	}

	got, err := st.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got != nil {
		t.Fatal("expected run to be deleted")
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	run := store.NewRun()
	run.Output = "persisted"
	if err := first.SaveRun(context.Background(), run); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	second := testsupport.MustOpenStore(t, cfg)
	got, err := second.GetRun(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got == nil || got.Output != "persisted" {
		t.Fatalf("expected persisted run after reopen, got %+v", got)
	}
}
