package tasks

import (
	"context"
	"testing"
	"time"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	task, _ := r.Begin(context.Background(), KindImage, "user-1", "img-1", "at a cafe")
	if task.State != StatePending {
		t.Fatalf("expected pending, got %s", task.State)
	}

	r.Succeed(task.ID, Result{URL: "/api/v1/blobs/abc", BlobKey: "abc"})

	got, ok := r.Get(task.ID)
	if !ok {
		t.Fatal("task not found after succeed")
	}
	if got.State != StateSucceeded {
		t.Errorf("expected succeeded, got %s", got.State)
	}
	if got.Result == nil || got.Result.BlobKey != "abc" {
		t.Errorf("result not recorded: %+v", got.Result)
	}
	if got.FinishedAt.IsZero() {
		t.Error("FinishedAt not set")
	}
}

func TestRegistryFail(t *testing.T) {
	r := NewRegistry()

	task, _ := r.Begin(context.Background(), KindVideo, "user-1", "img-1", "")
	r.Fail(task.ID, "upstream timeout")

	got, _ := r.Get(task.ID)
	if got.State != StateFailed {
		t.Errorf("expected failed, got %s", got.State)
	}
	if got.Error != "upstream timeout" {
		t.Errorf("expected error message, got %q", got.Error)
	}
}

func TestRegistryCancel(t *testing.T) {
	r := NewRegistry()

	task, ctx := r.Begin(context.Background(), KindImage, "user-1", "img-1", "")

	if !r.Cancel(task.ID) {
		t.Fatal("cancel on pending task should succeed")
	}

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}

	got, _ := r.Get(task.ID)
	if got.State != StateCancelled {
		t.Errorf("expected cancelled, got %s", got.State)
	}

	// finish หลัง cancel ต้องไม่ทับ state
	r.Succeed(task.ID, Result{URL: "late"})
	got, _ = r.Get(task.ID)
	if got.State != StateCancelled {
		t.Errorf("late succeed overwrote cancelled state: %s", got.State)
	}

	if r.Cancel(task.ID) {
		t.Error("cancel on terminal task should return false")
	}
}

func TestRegistryDismiss(t *testing.T) {
	r := NewRegistry()

	task, _ := r.Begin(context.Background(), KindSpeech, "user-1", "img-1", "")

	if r.Dismiss(task.ID) {
		t.Error("dismiss on active task should return false")
	}

	r.Fail(task.ID, "boom")
	if !r.Dismiss(task.ID) {
		t.Error("dismiss on terminal task should succeed")
	}

	if _, ok := r.Get(task.ID); ok {
		t.Error("dismissed task still in registry")
	}
}

func TestRegistryListByUser(t *testing.T) {
	r := NewRegistry()

	first, _ := r.Begin(context.Background(), KindImage, "user-a", "img-1", "")
	time.Sleep(time.Millisecond)
	second, _ := r.Begin(context.Background(), KindImage, "user-a", "img-2", "")
	r.Begin(context.Background(), KindImage, "user-b", "img-3", "")

	got := r.ListByUser("user-a")
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks for user-a, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Error("tasks not sorted by start time")
	}

	if len(r.ListByUser("user-c")) != 0 {
		t.Error("expected no tasks for unknown user")
	}
}

func TestRegistryPruneFinished(t *testing.T) {
	r := NewRegistry()

	done, _ := r.Begin(context.Background(), KindImage, "user-1", "img-1", "")
	r.Succeed(done.ID, Result{})
	active, _ := r.Begin(context.Background(), KindImage, "user-1", "img-2", "")

	time.Sleep(time.Millisecond)

	if pruned := r.PruneFinished(0); pruned != 1 {
		t.Fatalf("expected 1 pruned, got %d", pruned)
	}
	if _, ok := r.Get(done.ID); ok {
		t.Error("finished task survived prune")
	}
	if _, ok := r.Get(active.ID); !ok {
		t.Error("active task was pruned")
	}

	// maxAge ยาวกว่าอายุ task ไม่ควรโดน prune
	r.Fail(active.ID, "x")
	if pruned := r.PruneFinished(time.Hour); pruned != 0 {
		t.Errorf("recently finished task pruned too early: %d", pruned)
	}
}
