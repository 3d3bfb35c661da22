package domain

import "errors"

// Domain errors
var (
	ErrCorruptDocument        = errors.New("document cannot be opened or has no pages")
	ErrRecognitionUnavailable = errors.New("text recognition is not available")
	ErrTaskNotFound           = errors.New("task not found")
	ErrTaskNotFinished        = errors.New("task is not completed")
	ErrInvalidFile            = errors.New("invalid file")
	ErrQueueFull              = errors.New("processing queue is full")
)
