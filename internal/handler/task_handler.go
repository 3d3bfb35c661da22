package handler

import (
	"fmt"
	"net/http"

	"payslip-processor/internal/domain"
	"payslip-processor/internal/service"
	"payslip-processor/pkg/errors"

	"github.com/gorilla/mux"
)

// TaskHandler exposes task status and the organized result listing
type TaskHandler struct {
	store     domain.TaskStore
	organizer *service.Organizer
	logger    domain.Logger
}

// NewTaskHandler creates a new task handler instance
func NewTaskHandler(store domain.TaskStore, organizer *service.Organizer, logger domain.Logger) *TaskHandler {
	return &TaskHandler{
		store:     store,
		organizer: organizer,
		logger:    logger,
	}
}

// GetStatus reports the current task state in a shape that depends on the
// state: progress counters while running, counts on success, the error
// message on failure.
func (h *TaskHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	task, ok := h.store.Get(taskID)
	if !ok {
		writeDomainError(w, domain.ErrTaskNotFound)
		return
	}

	switch task.State {
	case domain.StatePending:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"task_id": taskID,
			"status":  "Pending",
		})
	case domain.StateProgress:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"task_id":  taskID,
			"status":   "Processing",
			"progress": task.Progress.Phase,
			"current":  task.Progress.Current,
			"total":    task.Progress.Total,
		})
	case domain.StateSuccess:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"task_id":        taskID,
			"status":         "Completed",
			"output_dir":     task.Result.OutputDir,
			"file_count":     task.Result.FileCount,
			"employee_count": task.Result.EmployeeCount,
			"fallback_count": task.Result.FallbackCount,
			"total_pages":    task.Result.TotalPages,
		})
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"task_id": taskID,
			"status":  "Failed",
			"error":   task.Error,
		})
	}
}

// GetResult returns the folder structure of a completed task: one folder per
// employee identifier, each listing that employee's payslip files.
func (h *TaskHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	task, ok := h.store.Get(taskID)
	if !ok {
		writeDomainError(w, domain.ErrTaskNotFound)
		return
	}
	if task.State != domain.StateSuccess {
		writeDomainError(w, fmt.Errorf("%w (state: %s)", domain.ErrTaskNotFinished, task.State))
		return
	}

	structure, err := h.organizer.Listing(task.Result.OutputDir)
	if err != nil {
		h.logger.Error("Failed to read output directory", err, "task_id", taskID, "output_dir", task.Result.OutputDir)
		writeAppError(w, errors.NewNotFoundError("Processed files not found"))
		return
	}

	totalFiles := 0
	for _, files := range structure {
		totalFiles += len(files)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"task_id":          taskID,
		"output_dir":       task.Result.OutputDir,
		"folder_structure": structure,
		"total_folders":    len(structure),
		"total_files":      totalFiles,
	})
}
