package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	msgInternalError = "error interno del servidor"
	msgForbidden     = "no tiene permisos para esta operación"
	msgNotFound      = "recurso no encontrado"
	msgConflict      = "la operación entra en conflicto con otra reserva"
	msgTerminal      = "la reserva ya está cancelada"
	msgInvalidInput  = "datos de entrada inválidos"

	// ReasonAlreadyTerminal reason reported with 409 for terminal reservations
	ReasonAlreadyTerminal = "ALREADY_TERMINAL"
)

var (
	// ErrInvalidBody тело запроса не является корректным JSON
	ErrInvalidBody = errors.New("handlers: invalid request body")

	// ErrValidationFailed тело запроса не прошло валидацию
	ErrValidationFailed = errors.New("handlers: request validation failed")

	// ErrInvalidQuery некорректный query параметр
	ErrInvalidQuery = errors.New("handlers: invalid query parameter")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse error body; Reason is set for 409 responses
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// RespondJSON writes data as JSON with status
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError writes {"error": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondConflict writes 409 with the reason tag
func RespondConflict(w http.ResponseWriter, message, reason string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: message, Reason: reason})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusOf maps the domain error taxonomy to an HTTP status and a 409 reason.
// Errors outside the taxonomy are internal.
func StatusOf(err error) (int, string) {
	if reason, ok := domain.ConflictReasonOf(err); ok {
		return http.StatusConflict, string(reason)
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ""
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ""
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ""
	case errors.Is(err, domain.ErrAlreadyTerminal):
		return http.StatusConflict, ReasonAlreadyTerminal
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ""
	default:
		return http.StatusInternalServerError, ""
	}
}

// RespondDomainError writes err according to StatusOf. An empty message falls back to a generic text per status.
func RespondDomainError(w http.ResponseWriter, err error, message string) {
	status, reason := StatusOf(err)
	if status == http.StatusInternalServerError {
		RespondInternalError(w)
		return
	}
	if message == "" {
		message = defaultMessage(status, reason)
	}
	RespondJSON(w, status, ErrorResponse{Error: message, Reason: reason})
}

func defaultMessage(status int, reason string) string {
	switch status {
	case http.StatusBadRequest:
		return msgInvalidInput
	case http.StatusNotFound:
		return msgNotFound
	case http.StatusForbidden:
		return msgForbidden
	}
	if reason == ReasonAlreadyTerminal {
		return msgTerminal
	}
	return msgConflict
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidBody)
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// DecodeOptionalJSON like DecodeJSON, but an empty body leaves v untouched
func DecodeOptionalJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// DecodeAndValidate decodes the body and runs the `validate` struct tags
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return nil
}

// QueryDate parses a YYYY-MM-DD query parameter; required reports a missing value as an error
func QueryDate(r *http.Request, name string, required bool) (time.Time, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		if required {
			return time.Time{}, false, fmt.Errorf("%w: %s is required", ErrInvalidQuery, name)
		}
		return time.Time{}, false, nil
	}
	d, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, name, raw)
	}
	return d, true, nil
}

// QueryInt parses an optional integer query parameter; 0 when absent
func QueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, name, raw)
	}
	return n, nil
}
