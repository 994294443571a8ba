package storage

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tilephys/internal/config"
	"github.com/vovakirdan/tilephys/internal/sim"
)

func TestSaveRunRoundTrip(t *testing.T) {
	store := openTestStore(t)
	frames := sim.NewRunner(config.DefaultScenario(), nil).Run()

	id, err := store.SaveRun("demo", frames)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunFrames(id)
	if err != nil {
		t.Fatalf("RunFrames() failed: %v", err)
	}
	if !reflect.DeepEqual(got, frames) {
		t.Errorf("RunFrames() = %+v, expected %+v", got, frames)
	}

	run, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if run.Scenario != "demo" || run.Steps != 10 || run.FinalX != 64 || run.FinalY != 0 {
		t.Errorf("unexpected run summary: %+v", run)
	}
}

func TestSaveRunRejectsEmpty(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("empty", nil); err == nil {
		t.Error("expected error when saving a run without frames")
	}

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("rejected run should not be stored, got %d runs", len(runs))
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	frames := sim.NewRunner(config.DefaultScenario(), nil).Run()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := store.SaveRun(name, frames); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", name, err)
		}
	}

	runs, err := store.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].Scenario != "third" || runs[1].Scenario != "second" {
		t.Errorf("runs not newest first: %s, %s", runs[0].Scenario, runs[1].Scenario)
	}
}

func TestRunFramesUnknownRun(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunFrames(999)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}
