package domain

import "context"

// PageSplitter splits a source document into ordered single-page units.
// Returns ErrCorruptDocument (wrapped) when the source cannot be opened or
// reports zero pages.
type PageSplitter interface {
	Split(ctx context.Context, inputPath, pagesDir string) ([]PageUnit, error)
}

// TextAcquirer produces best-effort text for a single page. It never fails:
// every extraction problem degrades to an empty SourceNone result. With
// forceOCR the native text layer is skipped and the page goes straight to
// recognition at full resolution.
type TextAcquirer interface {
	Acquire(ctx context.Context, pagePath string, forceOCR bool) AcquiredText
}

// Recognizer is the external text-recognition capability. It may be entirely
// absent on the host; Available reports that without failing.
type Recognizer interface {
	Available() bool
	Recognize(ctx context.Context, image []byte, lang string) (string, error)
}

// ProgressFunc receives incremental progress updates from a running task.
type ProgressFunc func(phase string, current, total int)

// TaskStore tracks task lifecycle state. Implementations must be safe for
// concurrent use; Get returns a snapshot copy.
type TaskStore interface {
	Create(id string) Task
	Get(id string) (Task, bool)
	SetProgress(id string, progress Progress)
	SetSuccess(id string, result *TaskResult)
	SetFailure(id string, message string)
}

// TaskSubmitter enqueues an accepted upload for asynchronous processing.
type TaskSubmitter interface {
	Submit(taskID, inputPath string) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetOutputPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetOCRLanguage() string
	GetOCRTimeoutSec() int
	GetTesseractPath() string
	GetWorkerCount() int
	GetQueueSize() int
}
