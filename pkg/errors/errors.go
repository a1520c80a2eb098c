package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnavailable  = "SERVICE_UNAVAILABLE"

	// Date expression resolution
	CodeUnknownMonth        = "UNKNOWN_MONTH"
	CodeInvalidCalendarDate = "INVALID_CALENDAR_DATE"
	CodeWeekdayMismatch     = "WEEKDAY_MISMATCH"
	CodeUnrecognizedFormat  = "UNRECOGNIZED_FORMAT"

	// Availability checks
	CodeAttendantNotFound    = "ATTENDANT_NOT_FOUND"
	CodeAttendantInactive    = "ATTENDANT_INACTIVE"
	CodeNoWorkWindows        = "NO_WORK_WINDOWS"
	CodeNoWindowsForWeekday  = "NO_WINDOWS_FOR_WEEKDAY"
	CodeDateInPast           = "DATE_IN_PAST"
	CodeAdvanceLimitExceeded = "ADVANCE_LIMIT_EXCEEDED"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) ToJSON() []byte {
	response := ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
	data, _ := json.Marshal(response)
	return data
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func Unavailable(service string) *AppError {
	return &AppError{
		Code:       CodeUnavailable,
		Message:    fmt.Sprintf("%s is temporarily unavailable", service),
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func UnknownMonth(name string) *AppError {
	return &AppError{
		Code:       CodeUnknownMonth,
		Message:    fmt.Sprintf("%q is not a Portuguese month name", name),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"month": name,
		},
	}
}

func InvalidCalendarDate(day, month, year int) *AppError {
	return &AppError{
		Code:       CodeInvalidCalendarDate,
		Message:    fmt.Sprintf("%02d/%02d/%04d is not a real calendar date", day, month, year),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"day":   day,
			"month": month,
			"year":  year,
		},
	}
}

// WeekdayMismatch reports that the weekday named in an expression disagrees
// with the weekday of the date the expression resolves to. Neither side is
// trusted over the other; the caller must re-ask the user.
func WeekdayMismatch(expected, actual int, expectedName, actualName, isoDate string) *AppError {
	return &AppError{
		Code:       CodeWeekdayMismatch,
		Message:    fmt.Sprintf("expression names %s but %s is a %s", expectedName, isoDate, actualName),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"expected_weekday": expected,
			"actual_weekday":   actual,
			"date":             isoDate,
		},
	}
}

func UnrecognizedFormat(expression string) *AppError {
	return &AppError{
		Code:       CodeUnrecognizedFormat,
		Message:    "date expression is not in a recognized format",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"expression": expression,
		},
	}
}

func AttendantNotFound(id string) *AppError {
	return &AppError{
		Code:       CodeAttendantNotFound,
		Message:    "attendant not found",
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"attendant_id": id,
		},
	}
}

func AttendantInactive(id string) *AppError {
	return &AppError{
		Code:       CodeAttendantInactive,
		Message:    "attendant is not accepting bookings",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"attendant_id": id,
		},
	}
}

func NoWorkWindows(attendantID string) *AppError {
	return &AppError{
		Code:       CodeNoWorkWindows,
		Message:    "attendant has no work windows configured",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"attendant_id": attendantID,
		},
	}
}

func NoWindowsForWeekday(attendantID string, weekday int) *AppError {
	return &AppError{
		Code:       CodeNoWindowsForWeekday,
		Message:    "attendant does not work on the requested weekday",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"attendant_id": attendantID,
			"weekday":      weekday,
		},
	}
}

func DateInPast(isoDate string) *AppError {
	return &AppError{
		Code:       CodeDateInPast,
		Message:    fmt.Sprintf("%s is in the past", isoDate),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"date": isoDate,
		},
	}
}

func AdvanceLimitExceeded(isoDate string, limitDays int) *AppError {
	return &AppError{
		Code:       CodeAdvanceLimitExceeded,
		Message:    fmt.Sprintf("%s is more than %d days ahead", isoDate, limitDays),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"date":       isoDate,
			"limit_days": limitDays,
		},
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
