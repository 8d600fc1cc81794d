package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
	"github.com/creative-sdg/multitulza-sub000/pkg/tasks"
)

func newTestMediaService(t *testing.T) (services.MediaService, *tasks.Registry, *fakeBlobService) {
	t.Helper()

	registry := tasks.NewRegistry()
	blobSvc := &fakeBlobService{}
	svc := NewMediaService(registry, &fakeMediaGen{}, blobSvc, nil, settings.InitCache(nil))
	return svc, registry, blobSvc
}

func waitTerminal(t *testing.T, registry *tasks.Registry, ids []string) map[string]tasks.Task {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		all := registry.ListByUser("user-1")
		done := make(map[string]tasks.Task)
		for _, task := range all {
			if task.State.IsTerminal() {
				done[task.ID.String()] = task
			}
		}
		if len(done) >= len(ids) {
			return done
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("tasks did not reach terminal state in time")
	return nil
}

func TestImageGenerationTaskIsolation(t *testing.T) {
	svc, registry, blobSvc := newTestMediaService(t)

	// 3 tasks พร้อมกัน ตัวกลาง fail ที่เหลือต้องไม่โดนกระทบ
	prompts := []string{"scene-one", "this-will-fail", "scene-three"}
	ids := make([]string, 0, len(prompts))
	for _, p := range prompts {
		task, err := svc.StartImageGeneration(context.Background(), "user-1", &dto.GenerateImageRequest{
			ImageID: "img-1",
			Prompt:  p,
		})
		if err != nil {
			t.Fatalf("start failed for %q: %v", p, err)
		}
		ids = append(ids, task.ID.String())
	}

	done := waitTerminal(t, registry, ids)

	succeeded, failed := 0, 0
	for _, task := range done {
		switch task.State {
		case tasks.StateSucceeded:
			succeeded++
			if task.Result == nil || task.Result.BlobKey != "blob-key" {
				t.Errorf("succeeded task missing cached result: %+v", task.Result)
			}
		case tasks.StateFailed:
			failed++
			if task.Error == "" {
				t.Error("failed task has no error message")
			}
		}
	}

	if succeeded != 2 || failed != 1 {
		t.Errorf("expected 2 succeeded + 1 failed, got %d/%d", succeeded, failed)
	}
	if n := blobSvc.savedCount(); n != 2 {
		t.Errorf("expected 2 blobs cached, got %d", n)
	}
}

func TestImageGenerationKeepsTransientURLOnCacheFailure(t *testing.T) {
	registry := tasks.NewRegistry()
	blobSvc := &fakeBlobService{failSav: true}
	svc := NewMediaService(registry, &fakeMediaGen{}, blobSvc, nil, settings.InitCache(nil))

	task, err := svc.StartImageGeneration(context.Background(), "user-1", &dto.GenerateImageRequest{
		ImageID: "img-1",
		Prompt:  "scene-one",
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	done := waitTerminal(t, registry, []string{task.ID.String()})
	got := done[task.ID.String()]

	if got.State != tasks.StateSucceeded {
		t.Fatalf("expected succeeded despite cache failure, got %s (%s)", got.State, got.Error)
	}
	if got.Result.BlobKey != "" {
		t.Errorf("expected empty blob key, got %q", got.Result.BlobKey)
	}
	if got.Result.URL == "" || got.Result.URL[:8] != "https://" {
		t.Errorf("expected transient provider URL, got %q", got.Result.URL)
	}
}

func TestCancelTask(t *testing.T) {
	svc, registry, _ := newTestMediaService(t)

	task, err := svc.StartImageGeneration(context.Background(), "user-1", &dto.GenerateImageRequest{
		ImageID: "img-1",
		Prompt:  "block-forever",
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if err := svc.CancelTask("user-1", task.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	done := waitTerminal(t, registry, []string{task.ID.String()})
	if got := done[task.ID.String()]; got.State != tasks.StateCancelled {
		t.Errorf("expected cancelled, got %s", got.State)
	}

	// cancel ซ้ำบน task ที่จบแล้ว
	if err := svc.CancelTask("user-1", task.ID); !errors.Is(err, services.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestTaskOwnership(t *testing.T) {
	svc, _, _ := newTestMediaService(t)

	task, err := svc.StartImageGeneration(context.Background(), "user-1", &dto.GenerateImageRequest{
		ImageID: "img-1",
		Prompt:  "block-forever",
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer svc.CancelTask("user-1", task.ID)

	if _, err := svc.GetTask("intruder", task.ID); !errors.Is(err, services.ErrForbidden) && !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ownership error, got %v", err)
	}
	if err := svc.CancelTask("intruder", task.ID); err == nil {
		t.Error("expected ownership error on cancel")
	}
}
