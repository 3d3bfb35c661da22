package handler

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"payslip-processor/internal/domain"
	"payslip-processor/pkg/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps a typed application error onto its HTTP status
func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, errors.GetStatusCode(err), err.Error())
}

// writeDomainError translates a domain sentinel error (possibly wrapped) into
// the typed API error shape.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, domain.ErrInvalidFile):
		writeAppError(w, errors.NewValidationError(err.Error()))
	case stderrors.Is(err, domain.ErrTaskNotFound):
		writeAppError(w, errors.NewNotFoundError(err.Error()))
	case stderrors.Is(err, domain.ErrTaskNotFinished):
		writeAppError(w, errors.NewConflictError(err.Error()))
	case stderrors.Is(err, domain.ErrQueueFull):
		writeAppError(w, errors.NewUnavailableError(err.Error(), err))
	default:
		writeAppError(w, errors.NewInternalError(err.Error(), err))
	}
}
