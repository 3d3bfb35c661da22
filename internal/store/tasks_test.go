package store

import (
	"fmt"
	"sync"
	"testing"

	"payslip-processor/internal/domain"
)

func TestMemoryTaskStore_Lifecycle(t *testing.T) {
	s := NewMemoryTaskStore()

	created := s.Create("t1")
	if created.State != domain.StatePending {
		t.Errorf("new task state = %s, want PENDING", created.State)
	}

	s.SetProgress("t1", domain.Progress{Phase: "Processing payslip 2/5", Current: 2, Total: 5})
	task, ok := s.Get("t1")
	if !ok {
		t.Fatal("task disappeared")
	}
	if task.State != domain.StateProgress {
		t.Errorf("state = %s, want PROGRESS", task.State)
	}
	if task.Progress.Current != 2 || task.Progress.Total != 5 {
		t.Errorf("progress = %+v", task.Progress)
	}

	s.SetSuccess("t1", &domain.TaskResult{TotalPages: 5, FileCount: 5})
	task, _ = s.Get("t1")
	if task.State != domain.StateSuccess {
		t.Errorf("state = %s, want SUCCESS", task.State)
	}
	if task.Result == nil || task.Result.FileCount != 5 {
		t.Errorf("result = %+v", task.Result)
	}
	if task.Error != "" {
		t.Errorf("error = %q, want empty after success", task.Error)
	}
}

func TestMemoryTaskStore_Failure(t *testing.T) {
	s := NewMemoryTaskStore()
	s.Create("t1")
	s.SetFailure("t1", "processing failed: broken xref")

	task, _ := s.Get("t1")
	if task.State != domain.StateFailure {
		t.Errorf("state = %s, want FAILURE", task.State)
	}
	if task.Error == "" {
		t.Error("failure must carry an error description")
	}
}

func TestMemoryTaskStore_UnknownTask(t *testing.T) {
	s := NewMemoryTaskStore()

	if _, ok := s.Get("missing"); ok {
		t.Error("Get on unknown id should report absence")
	}
	// Updates on unknown ids are ignored, not panics.
	s.SetProgress("missing", domain.Progress{})
	s.SetSuccess("missing", &domain.TaskResult{})
	s.SetFailure("missing", "nope")
}

func TestMemoryTaskStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryTaskStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("t%d", n)
			s.Create(id)
			for c := 0; c < 100; c++ {
				s.SetProgress(id, domain.Progress{Current: c, Total: 100})
				s.Get(id)
			}
			s.SetSuccess(id, &domain.TaskResult{TotalPages: 100})
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		task, ok := s.Get(fmt.Sprintf("t%d", i))
		if !ok || task.State != domain.StateSuccess {
			t.Errorf("task t%d = %+v", i, task)
		}
	}
}
