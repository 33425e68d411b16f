package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for application operations
var (
	ErrDuplicateFields    = errors.New("duplicate_fields")
	ErrRecentApplication  = errors.New("cuil_reciente")
	ErrValidation         = errors.New("validation failed")
	ErrApplicantRejected  = errors.New("applicant rejected")
	ErrBureauUnavailable  = errors.New("credit bureau unavailable")
	ErrBureauNotFound     = errors.New("cuil not found in credit bureau")
	ErrSolicitudNotFound  = errors.New("solicitud not found")
	ErrInvalidSolicitudID = errors.New("invalid solicitud ID")
	ErrInvalidParams      = errors.New("invalid simulation parameters")
)

// DuplicateFieldsError lists the unique fields already taken by a
// non-rejected application.
type DuplicateFieldsError struct {
	Code   string   `json:"code"`
	Fields []string `json:"fields"`
}

func NewDuplicateFieldsError(fields []string) *DuplicateFieldsError {
	return &DuplicateFieldsError{Code: "duplicate_fields", Fields: fields}
}

func (e *DuplicateFieldsError) Error() string {
	return fmt.Sprintf("duplicate_fields: %s", strings.Join(e.Fields, ", "))
}

func (e *DuplicateFieldsError) Is(target error) bool {
	return target == ErrDuplicateFields
}

// RecencyError reports that the CUIL applied within the recency window.
type RecencyError struct {
	LastDate   *time.Time
	WindowDays int
	// Message is shown to the applicant
	Message string
}

func (e *RecencyError) Error() string {
	if e.LastDate == nil {
		return fmt.Sprintf("cuil applied within the last %d days", e.WindowDays)
	}
	return fmt.Sprintf("cuil applied on %s, within the last %d days", e.LastDate.Format(time.RFC3339), e.WindowDays)
}

func (e *RecencyError) Is(target error) bool {
	return target == ErrRecentApplication
}

// ValidationError describes a single invalid input field
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors collects field errors for one request
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Fields returns the names of the invalid fields in order
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, e := range v {
		fields = append(fields, e.Field)
	}
	return fields
}

// Add appends a field error
func (v *ValidationErrors) Add(field, code, message string) {
	*v = append(*v, ValidationError{Field: field, Code: code, Message: message})
}

// Err returns nil when no errors were collected
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// RejectionError is returned by a wizard step that rejected the applicant.
// The rejection has already been persisted under SolicitudID.
type RejectionError struct {
	Motivo      MotivoRechazo
	Descripcion string
	Resultado   *ResultadoEvaluacion
	SolicitudID string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("applicant rejected: %s", e.Motivo)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrApplicantRejected
}
