package handler

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"payslip-processor/internal/domain"
	"payslip-processor/pkg/errors"

	"github.com/google/uuid"
)

// multipartOverhead is the slack added on top of the file size limit for the
// multipart framing around the file part.
const multipartOverhead = 10 << 10

// ProcessHandler accepts payroll batch uploads and starts processing tasks
type ProcessHandler struct {
	store       domain.TaskStore
	submitter   domain.TaskSubmitter
	uploadPath  string
	maxFileSize int64
	logger      domain.Logger
}

// NewProcessHandler creates a new process handler instance
func NewProcessHandler(store domain.TaskStore, submitter domain.TaskSubmitter, uploadPath string, maxFileSize int64, logger domain.Logger) *ProcessHandler {
	return &ProcessHandler{
		store:       store,
		submitter:   submitter,
		uploadPath:  uploadPath,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ProcessPDF handles a multipart payroll PDF upload. The file is validated,
// persisted under a task-unique name and handed to the worker pool; the
// response carries the task ID to poll.
func (h *ProcessHandler) ProcessPDF(w http.ResponseWriter, r *http.Request) {
	// Cut off oversize bodies while reading rather than after spooling.
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			writeDomainError(w, fmt.Errorf("%w: exceeds the %d byte limit", domain.ErrInvalidFile, h.maxFileSize))
			return
		}
		writeDomainError(w, fmt.Errorf("%w: multipart field %q is required", domain.ErrInvalidFile, "file"))
		return
	}
	defer file.Close()

	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if strings.ToLower(filepath.Ext(originalName)) != ".pdf" {
		writeDomainError(w, fmt.Errorf("%w: only PDF files are accepted", domain.ErrInvalidFile))
		return
	}
	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		writeDomainError(w, fmt.Errorf("%w: exceeds the %d byte limit", domain.ErrInvalidFile, h.maxFileSize))
		return
	}

	taskID := uuid.NewString()
	inputPath, err := h.saveUpload(file, taskID)
	if err != nil {
		h.logger.Error("Failed to persist upload", err, "filename", originalName)
		writeAppError(w, errors.NewInternalError("Could not save uploaded file", err))
		return
	}

	h.store.Create(taskID)
	if err := h.submitter.Submit(taskID, inputPath); err != nil {
		os.Remove(inputPath)
		h.store.SetFailure(taskID, err.Error())
		writeDomainError(w, err)
		return
	}

	h.logger.Info("Accepted payroll batch", "task_id", taskID, "filename", originalName, "size", header.Size)
	writeJSON(w, http.StatusAccepted, map[string]string{
		"task_id": taskID,
		"status":  "Task started",
	})
}

func (h *ProcessHandler) saveUpload(file io.Reader, taskID string) (string, error) {
	if err := os.MkdirAll(h.uploadPath, 0o755); err != nil {
		return "", err
	}
	inputPath := filepath.Join(h.uploadPath, taskID+".pdf")

	out, err := os.Create(inputPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(inputPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(inputPath)
		return "", err
	}
	return inputPath, nil
}
