package internal

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestRunTasksRunsEverything(t *testing.T) {
	var ran atomic.Int64
	tasks := make([]Task, 50)
	for i := range tasks {
		tasks[i] = func() error {
			ran.Add(1)
			return nil
		}
	}

	if err := RunTasks(context.Background(), 4, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ran.Load(); got != 50 {
		t.Errorf("ran %d tasks, want 50", got)
	}
}

func TestRunTasksEmpty(t *testing.T) {
	if err := RunTasks(context.Background(), 4, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunTasksFirstErrorStopsNewWork(t *testing.T) {
	boom := errors.New("boom")
	var started atomic.Int64
	tasks := make([]Task, 100)
	for i := range tasks {
		i := i
		tasks[i] = func() error {
			started.Add(1)
			if i == 0 {
				return boom
			}
			return nil
		}
	}

	// One worker makes the schedule deterministic: task 0 fails, and no
	// further task may start.
	err := RunTasks(context.Background(), 1, tasks)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got := started.Load(); got != 1 {
		t.Errorf("started %d tasks after failure, want 1", got)
	}
}

func TestRunTasksCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := []Task{
		func() error { t.Error("task ran under canceled context"); return nil },
	}
	if err := RunTasks(ctx, 2, tasks); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunTasksClampsWorkers(t *testing.T) {
	var ran atomic.Int64
	tasks := []Task{
		func() error { ran.Add(1); return nil },
		func() error { ran.Add(1); return nil },
	}

	// More workers than tasks, and a nonsense worker count, both still
	// run everything exactly once.
	if err := RunTasks(context.Background(), 64, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RunTasks(context.Background(), -1, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ran.Load(); got != 4 {
		t.Errorf("ran %d task invocations, want 4", got)
	}
}
