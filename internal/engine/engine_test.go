package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func mustCreateTask(t *testing.T, svc *Service, in CreateTaskInput) *storage.Task {
	t.Helper()
	if in.Kind == "" {
		in.Kind = TaskKindCheckbox
	}
	task, err := svc.CreateTask(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateTask(%q): %v", in.Title, err)
	}
	return task
}

func mustComplete(t *testing.T, svc *Service, taskID string, day time.Time) {
	t.Helper()
	if err := svc.CompleteTask(context.Background(), taskID, day, nil); err != nil {
		t.Fatalf("CompleteTask(%s, %s): %v", taskID, day.Format(storage.DateLayout), err)
	}
}
