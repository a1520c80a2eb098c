package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"zapagenda/pkg/logger"
	"zapagenda/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("valid_time_of_day", validateTimeOfDay); err != nil {
		log.Fatal("Failed to register 'valid_time_of_day' validator", "error", err)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateTimeOfDay(fl validator.FieldLevel) bool {

	timeOfDay := strings.TrimSpace(fl.Field().String())

	if timeOfDay != "" {
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			return false
		}
		var hour, minute int
		if _, err := fmt.Sscanf(timeOfDay, "%02d:%02d", &hour, &minute); err != nil {
			return false
		}
		if hour < 0 || hour > 23 {
			return false
		}
		if minute < 0 || minute > 59 {
			return false
		}
	}

	return true
}

func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "e164":
			message = fmt.Sprintf("%s must be an E.164 phone number, like +5511999999999", err.Field())
		case "valid_time_of_day":
			message = fmt.Sprintf("%s must be a time of day in HH:MM 24-hour format", err.Field())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
